package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bsaintjo/advent2024/internal/config"
	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/pipeline"
)

var outputFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

func validateFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text, json or yaml)", format)
	}
	return nil
}

// writeResult renders res to w in the given format.
func writeResult(w io.Writer, res *pipeline.Result, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, res)
	case config.FormatYAML:
		return writeYAML(w, res)
	case config.FormatText:
		writeText(w, res)
		return nil
	default:
		return validateFormat(format)
	}
}

func writeJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writeYAML(w io.Writer, res *pipeline.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, res *pipeline.Result) {
	printTitle(w, "Page ordering report")
	printKeyValue(w, "Mode", string(res.Mode))
	printKeyValue(w, "Rules", strconv.Itoa(res.RuleCount))
	printKeyValue(w, "Sequences", fmt.Sprintf("%d (%d valid, %d invalid) %s",
		res.SequenceCount, res.ValidCount, res.InvalidCount, cacheStatus(res.Cached)))
	fmt.Fprintln(w)

	for _, s := range res.Sequences {
		loc := fmt.Sprintf("#%d", s.Index+1)
		if s.Line > 0 {
			loc += fmt.Sprintf(" line %d", s.Line)
		}
		switch {
		case s.Valid:
			printSuccess(w, "%s  %s  middle %d", loc, s.Pages, s.Middle)
		case s.Reordered != nil:
			printFailure(w, "%s  %s %s %s  middle %d", loc, s.Pages, iconArrow, s.Reordered, s.Middle)
		default:
			printFailure(w, "%s  %s", loc, s.Pages)
		}
	}
	fmt.Fprintln(w)

	if res.Mode != pipeline.ModeCorrected {
		printKeyValue(w, "Valid sum", StyleNumber.Render(strconv.Itoa(res.ValidSum)))
	}
	if res.Mode != pipeline.ModeValid {
		printKeyValue(w, "Corrected sum", StyleNumber.Render(strconv.Itoa(res.CorrectedSum)))
	}
	if res.Mode == pipeline.ModeAll {
		printKeyValue(w, "Total", StyleNumber.Render(strconv.Itoa(res.Answer())))
	}
}
