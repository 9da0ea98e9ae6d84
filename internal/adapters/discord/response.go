package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	pkgdiscord "translatebot/pkg/discord"
)

// send posts content to the channel, split to fit Discord's length limit.
func (h *Handler) send(ctx context.Context, api discordAPI, channelID, content string, log zerolog.Logger) {
	for _, chunk := range pkgdiscord.SplitMessage(content, pkgdiscord.MaxMessageLength) {
		if _, err := api.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx)); err != nil {
			log.Error().Err(err).Msg("send reply")
			return
		}
	}
}
