package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/esimov/dyntype"
	"github.com/esimov/dyntype/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬ ┬┌┐┌┌┬┐┬ ┬┌─┐┌─┐
 │││└┬┘│││ │ └┬┘├─┘├┤
─┴┘ ┴ ┘└┘ ┴  ┴ ┴  └─┘

Scale layout values by the preferred text size.
    Version: %s

`

// allLevels is the -level value selecting every text size level.
const allLevels = "all"

// Version indicates the current build version.
var Version string

// optionalFloat is a float flag which remembers whether it was set.
type optionalFloat struct {
	v   float64
	set bool
}

func (f *optionalFloat) String() string {
	if f == nil || !f.set {
		return ""
	}
	return utils.FormatValue(f.v)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func (f *optionalFloat) ptr() *float64 {
	if !f.set {
		return nil
	}
	return &f.v
}

var (
	// Flags
	value      = flag.Float64("value", 17, "Unscaled value")
	style      = flag.String("style", "body", "Text style to scale relative to")
	level      = flag.String("level", allLevels, "Text size level, \"current\" or \"all\"")
	curvesPath = flag.String("curves", "", "YAML file with the scaling curves")
	prefPath   = flag.String("pref", "", "YAML preference file holding the text size level")
	watch      = flag.Bool("watch", false, "Print the value again on every preference change")
	verbose    = flag.Bool("v", false, "Verbose logging")

	minValue, maxValue optionalFloat

	// decorate is set when the output goes to a terminal.
	decorate bool
)

func main() {
	log.SetFlags(0)

	flag.Var(&minValue, "min", "Minimum scaled value")
	flag.Var(&maxValue, "max", "Maximum scaled value")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	decorate = term.IsTerminal(int(os.Stdout.Fd()))

	if *verbose {
		dyntype.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *watch && *prefPath == "" {
		flag.Usage()
		log.Fatal(decorateText("\nThe -watch flag requires a preference file, please provide one with -pref!", utils.ErrorMessage))
	}

	if err := run(); err != nil {
		log.Fatalf("%s %s",
			decorateText("Error scaling the value:", utils.ErrorMessage),
			decorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

func run() error {
	bounds, err := dyntype.NewBounds(minValue.ptr(), maxValue.ptr())
	if err != nil {
		return err
	}
	textStyle, err := dyntype.ParseTextStyle(*style)
	if err != nil {
		return err
	}

	opts := []dyntype.Option{}
	if *curvesPath != "" {
		curves, err := dyntype.LoadCurvesFile(*curvesPath)
		if err != nil {
			return err
		}
		metrics, err := dyntype.NewCurveMetrics(curves)
		if err != nil {
			return err
		}
		opts = append(opts, dyntype.WithMetrics(metrics))
	}

	changes := make(chan dyntype.Level, 1)
	if *prefPath != "" {
		env, err := dyntype.NewFileEnvironment(*prefPath, dyntype.OnChange(func(l dyntype.Level) {
			select {
			case changes <- l:
			default:
			}
		}))
		if err != nil {
			return err
		}
		defer env.Close()
		opts = append(opts, dyntype.WithEnvironment(env))
	}

	scaler := dyntype.NewScaler(opts...)
	v := scaler.Value(*value, bounds, textStyle)

	levels, err := selectLevels(*level, scaler.Level())
	if err != nil {
		return err
	}
	out, err := renderTable(v, levels, scaler.Level())
	if err != nil {
		return err
	}
	fmt.Println(out)

	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, decorateText(fmt.Sprintf("Watching %s for changes...", *prefPath), utils.StatusMessage))
	for {
		select {
		case <-ctx.Done():
			return nil
		case l := <-changes:
			r, err := v.ValueAt(l)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				decorateText(l.String(), utils.StatusMessage),
				decorateText(utils.FormatValue(r), utils.SuccessMessage),
			)
		}
	}
}

// selectLevels resolves the -level flag value.
func selectLevels(name string, current dyntype.Level) ([]dyntype.Level, error) {
	switch name {
	case allLevels:
		return dyntype.Levels(), nil
	case "current":
		return []dyntype.Level{current}, nil
	case "":
		return nil, errors.New("no text size level provided")
	}
	l, err := dyntype.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return []dyntype.Level{l}, nil
}

// renderTable lists the value scaled for every level, marking the current one.
func renderTable(v *dyntype.ScaledValue, levels []dyntype.Level, current dyntype.Level) (string, error) {
	rows := make([][]string, 0, len(levels))
	currentRow := -1
	for _, l := range levels {
		cat, err := l.Category()
		if err != nil {
			return "", err
		}
		r, err := v.ValueAt(l)
		if err != nil {
			return "", err
		}
		mark := ""
		if l == current {
			mark = "●"
			currentRow = len(rows)
		}
		rows = append(rows, []string{mark, l.String(), cat.String(), utils.FormatValue(r)})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	highlight := cell.Foreground(lipgloss.Color("#50FA7B"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "LEVEL", "CATEGORY", v.Style().String()+" "+v.Bounds().String()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == currentRow && decorate:
				return highlight
			default:
				return cell
			}
		})
	return t.String(), nil
}

// decorateText colors s only when the output is a terminal.
func decorateText(s string, msgType utils.MessageType) string {
	if !decorate {
		return s
	}
	return utils.DecorateText(s, msgType)
}
