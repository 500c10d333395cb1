package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passkit/pkg/casing"
	"github.com/dmitrymomot/passkit/pkg/charpool"
	"github.com/dmitrymomot/passkit/pkg/logger"
	"github.com/dmitrymomot/passkit/pkg/passgen"
	"github.com/dmitrymomot/passkit/pkg/passlog"
	"github.com/dmitrymomot/passkit/pkg/prompt"
	"github.com/dmitrymomot/passkit/pkg/randx"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

var (
	success = color.New(color.FgGreen).SprintFunc()
	fail    = color.New(color.FgRed).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	accent  = color.New(color.FgYellow).SprintFunc()
)

const verifyCount = 1000

type app struct {
	cfg      appConfig
	log      *slog.Logger
	gen      *passgen.Generator
	recorder *passlog.Recorder
}

// generateMemorable re-reads the word list, generates one memorable password
// and appends it to the memorable log.
func (a *app) generateMemorable(numWords int, style casing.Style) (string, error) {
	words, err := wordlist.Load(a.cfg.WordlistPath)
	if err != nil {
		return "", err
	}

	pwd, err := a.gen.Memorable(words, numWords, style)
	if err != nil {
		return "", err
	}

	if err := a.recorder.Append(passlog.ModeMemorable, pwd); err != nil {
		return "", err
	}
	return pwd, nil
}

// generateRandom generates one random password and appends it to the random
// log.
func (a *app) generateRandom(length int, cfg charpool.Config) (string, error) {
	pwd, err := a.gen.Random(length, cfg)
	if err != nil {
		return "", err
	}

	if err := a.recorder.Append(passlog.ModeRandom, pwd); err != nil {
		return "", err
	}
	return pwd, nil
}

// runInteractive drives the menu flow: pick a mode, collect parameters with
// bounded re-prompting, generate and log.
func (a *app) runInteractive() error {
	p := prompt.New(os.Stdin, os.Stdout)

	fmt.Printf("\n%s\n", info("=== Password Generator ==="))
	fmt.Println("1) Memorable")
	fmt.Println("2) Random")

	choice, err := p.Int("Choose 1 or 2: ", 1, 2)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		numWords, err := p.Int(
			fmt.Sprintf("How many words (%d-%d): ", passgen.MinWords, passgen.MaxWords),
			passgen.MinWords, passgen.MaxWords,
		)
		if err != nil {
			return err
		}

		fmt.Println("Case options: lower, upper, title, random")
		tag, err := p.String("Case style: ", func(in string) error {
			_, err := casing.Parse(in)
			return err
		})
		if err != nil {
			return err
		}
		style, err := casing.Parse(tag)
		if err != nil {
			return err
		}

		pwd, err := a.generateMemorable(numWords, style)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s Generated memorable password: %s\n", success("✓"), accent(pwd))

	case 2:
		length, err := p.Int(
			fmt.Sprintf("Password length (%d-%d): ", passgen.MinLength, passgen.MaxLength),
			passgen.MinLength, passgen.MaxLength,
		)
		if err != nil {
			return err
		}

		usePunct, err := p.YesNo("Include punctuation?")
		if err != nil {
			return err
		}

		excluded, err := p.Line("Characters to exclude (Enter for none): ")
		if err != nil {
			return err
		}

		pwd, err := a.generateRandom(length, charpool.Config{
			Lower:       true,
			Upper:       true,
			Digits:      true,
			Punctuation: usePunct,
			Excluded:    excluded,
		})
		if err != nil {
			return err
		}
		fmt.Printf("\n%s Generated random password: %s\n", success("✓"), accent(pwd))
	}

	return nil
}

// runVerify bulk-generates passwords with randomized parameters and logs
// every one, exercising both generators and both log files.
func (a *app) runVerify() error {
	styles := []casing.Style{casing.StyleLower, casing.StyleUpper, casing.StyleTitle, casing.StyleRandom}
	rnd := randx.New()

	fmt.Printf("\n%s Generating %d passwords to verify logging...\n", info("🔐"), verifyCount)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Generating..."
	s.Start()

	var memorable, random, failures int
	for i := 1; i <= verifyCount; i++ {
		var err error
		if rnd.Intn(2) == 0 {
			_, err = a.generateMemorable(2+rnd.Intn(4), styles[rnd.Intn(len(styles))])
			memorable++
		} else {
			_, err = a.generateRandom(10+rnd.Intn(15), charpool.Config{
				Lower:       true,
				Upper:       true,
				Digits:      true,
				Punctuation: rnd.Intn(2) == 0,
			})
			random++
		}
		if err != nil {
			failures++
			a.log.Error("generation failed", slog.Int("iteration", i), slog.Any("error", err))
		}
		if i%200 == 0 {
			s.Suffix = fmt.Sprintf(" %d/%d complete...", i, verifyCount)
		}
	}

	s.Stop()

	if failures > 0 {
		fmt.Printf("%s %d of %d generations failed\n", fail("❌"), failures, verifyCount)
		return fmt.Errorf("%d generations failed", failures)
	}
	fmt.Printf("%s All %d passwords logged (%d memorable, %d random)\n",
		success("✓"), verifyCount, memorable, random)
	return nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg: cfg,
		log: logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))),
		gen: passgen.New(),
		recorder: passlog.New(
			passlog.WithDir(passlog.ModeMemorable, cfg.MemorableDir),
			passlog.WithDir(passlog.ModeRandom, cfg.RandomDir),
		),
	}, nil
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Printf("%s %v\n", fail("❌"), err)
		os.Exit(1)
	}

	var (
		numWords int
		caseTag  string

		length   int
		noLower  bool
		noUpper  bool
		noDigits bool
		punct    bool
		exclude  string
	)

	rootCmd := &cobra.Command{
		Use:   "passkit",
		Short: "Generate memorable and random passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}

	memorableCmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate a word-based memorable password",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := casing.Parse(caseTag)
			if err != nil {
				return err
			}
			pwd, err := a.generateMemorable(numWords, style)
			if err != nil {
				return err
			}
			fmt.Println(pwd)
			return nil
		},
	}
	memorableCmd.Flags().IntVar(&numWords, "words", 3, "number of words (2-10)")
	memorableCmd.Flags().StringVar(&caseTag, "case", "title", "case style: lower, upper, title or random")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a character-based random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := a.generateRandom(length, charpool.Config{
				Lower:       !noLower,
				Upper:       !noUpper,
				Digits:      !noDigits,
				Punctuation: punct,
				Excluded:    exclude,
			})
			if err != nil {
				return err
			}
			fmt.Println(pwd)
			return nil
		},
	}
	randomCmd.Flags().IntVar(&length, "length", 16, "password length (4-128)")
	randomCmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	randomCmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	randomCmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	randomCmd.Flags().BoolVar(&punct, "punct", false, "include punctuation")
	randomCmd.Flags().StringVar(&exclude, "exclude", "", "characters to exclude from the pool")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Generate 1000 passwords to verify logging",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify()
		},
	}

	rootCmd.AddCommand(memorableCmd, randomCmd, verifyCmd)
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("%s %v\n", fail("❌"), err)
		os.Exit(1)
	}
}
