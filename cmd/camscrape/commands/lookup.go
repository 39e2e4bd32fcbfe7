package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"camscrape/internal/render"
	"camscrape/lib/configutil"
	"camscrape/lib/scrapers/cambridge"
	"camscrape/lib/serviceutil"

	"github.com/spf13/cobra"
)

// Config tunes the HTTP client. Every field has a default, so running
// without a config file is fine.
type Config struct {
	BaseURL        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var (
	lookupLang    *string
	lookupPretty  *bool
	lookupTable   *bool
	lookupHTMLOut *string
	lookupCSSOut  *string
)

func init() {
	lookupLang = lookupCmd.Flags().String("lang", "en", "Language pair: en, en-zh-s or en-zh-t.")
	lookupPretty = lookupCmd.Flags().Bool("pretty", false, "Pretty-print the JSON output.")
	lookupTable = lookupCmd.Flags().Bool("table", false, "Print the entry as a table instead of JSON.")
	lookupHTMLOut = lookupCmd.Flags().String("html-out", "", "Write a rendered HTML document to this path.")
	lookupCSSOut = lookupCmd.Flags().String("css-out", "", "Write the stylesheet to this path (referenced by the HTML output).")
	rootCmd.AddCommand(lookupCmd)
}

func createClient() cambridge.Client {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	return cambridge.NewClient(cambridge.ClientOptions{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <word> [--lang en|en-zh-s|en-zh-t] [--pretty] [--table] [--html-out <path> [--css-out <path>]]",
	Short: "Looks up a word and prints the extracted entry.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		word := args[0]

		lang, err := cambridge.ParseLanguage(*lookupLang)
		if err != nil {
			serviceutil.Fatal("invalid --lang value", err)
		}

		client := createClient()

		t1 := time.Now()
		entry, err := client.Lookup(cmd.Context(), word, lang)
		if errors.Is(err, cambridge.ErrNotFound) {
			serviceutil.Fatal(fmt.Sprintf("%q is not in this dictionary", word), err)
		}
		if err != nil {
			serviceutil.Fatal("lookup failed", err)
		}
		slog.Debug("lookup time", "seconds", time.Since(t1).Seconds())

		if *lookupHTMLOut != "" {
			err = render.WriteHTML(entry, *lookupHTMLOut, *lookupCSSOut)
			if err != nil {
				serviceutil.Fatal("failed to write rendered entry", err)
			}
			slog.Info("wrote rendered entry", "html", *lookupHTMLOut, "css", *lookupCSSOut)
		}

		if *lookupTable {
			fmt.Println(render.Table(entry))
			return
		}

		out, err := render.JSON(entry, *lookupPretty)
		if err != nil {
			serviceutil.Fatal("failed to serialize entry", err)
		}
		fmt.Println(string(out))
	},
}
