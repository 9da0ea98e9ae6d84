package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"translatebot/internal/config"
	"translatebot/internal/domain"
	"translatebot/internal/infrastructure/deepl"
	"translatebot/internal/ports/output"
)

var (
	targetCode string
	sourceCode string
)

const longHelp = `deepl reads lines from stdin and prints their translation.
A blank line or end of input stops it. Credentials come from the same
settings file as the bot.

Example:
  deepl                    # translate to English, detect the source
  deepl --target de        # translate to German
  deepl -s fr -t en        # French to English`

var rootCmd = &cobra.Command{
	Use:          "deepl",
	Short:        "Translate stdin line by line with DeepL",
	Long:         longHelp,
	Args:         cobra.NoArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&targetCode, "target", "t", domain.DefaultTarget.Code(), "target language code")
	flags.StringVarP(&sourceCode, "source", "s", "", "source language code (default: detect)")
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})
}

func run(cmd *cobra.Command, _ []string) error {
	target, source, err := parseLanguages(targetCode, sourceCode)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := deepl.NewClient(cfg.DeeplToken, deepl.WithEndpoint(cfg.DeeplAPIURL))

	return translateLines(cmd.Context(), client, cmd.InOrStdin(), cmd.OutOrStdout(), target, source)
}

func parseLanguages(target, source string) (domain.Language, *domain.Language, error) {
	t, ok := domain.ParseLanguage(target)
	if !ok {
		return 0, nil, fmt.Errorf("unknown target language %q", target)
	}
	if source == "" {
		return t, nil, nil
	}
	s, ok := domain.ParseLanguage(source)
	if !ok {
		return 0, nil, fmt.Errorf("unknown source language %q", source)
	}
	if s == t {
		return 0, nil, domain.SameLanguage(s)
	}
	return t, &s, nil
}

// translateLines prints a prompt, translates each line and stops at the
// first blank line.
func translateLines(ctx context.Context, tr output.Translator, in io.Reader, out io.Writer, target domain.Language, source *domain.Language) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, ">")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		translated, err := tr.Translate(ctx, line, target, source)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, translated)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
