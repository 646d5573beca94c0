/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bordercalc/internal/border"
	"bordercalc/internal/config"
	"bordercalc/internal/crash"
	"bordercalc/internal/domain"
	"bordercalc/internal/export"
	applog "bordercalc/internal/log"
	"bordercalc/internal/statefile"
	"bordercalc/internal/version"
)

func usage() {
	fmt.Println("bordercalc — darkroom print border calculator")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bordercalc version|-v|--version     Show version")
	fmt.Println("  bordercalc [flags]                  Compute blade readings")
	fmt.Println()
	fmt.Println("When -state is given the document supplies the full input and the")
	fmt.Println("geometry flags are ignored.")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	defer crash.Recover()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		case "help", "--help", "-h":
			usage()
			return
		}
	}

	var (
		statePath   = flag.String("state", "", "state document (json or yaml) to compute from")
		saveState   = flag.String("save-state", "", "write the effective state document to this path")
		paper       = flag.String("paper", cfg.Calculator.DefaultPaperSize, "paper size id or \"custom\"")
		paperW      = flag.Float64("paper-width", 0, "custom paper width, inches")
		paperH      = flag.Float64("paper-height", 0, "custom paper height, inches")
		ratio       = flag.String("ratio", cfg.Calculator.DefaultAspectRatio, "aspect ratio id or \"custom\"")
		ratioW      = flag.Float64("ratio-width", 0, "custom ratio width")
		ratioH      = flag.Float64("ratio-height", 0, "custom ratio height")
		minBorder   = flag.Float64("border", cfg.Calculator.DefaultMinBorder, "minimum border, inches")
		landscape   = flag.Bool("landscape", false, "orient the paper in landscape")
		flipRatio   = flag.Bool("flip-ratio", false, "swap the aspect ratio axes")
		offsetH     = flag.Float64("offset-h", 0, "horizontal off-center offset, inches")
		offsetV     = flag.Float64("offset-v", 0, "vertical off-center offset, inches")
		ignoreMin   = flag.Bool("ignore-min-border", false, "let offsets push the print to the paper edge")
		showBlades  = flag.Bool("blades", false, "include blade indicators in diagrams")
		optimize    = flag.Bool("optimize", false, "nudge the border toward quarter-inch readings")
		asJSON      = flag.Bool("json", false, "print the calculation as JSON")
		pdfOut      = flag.String("pdf", "", "write a placement diagram PDF to this path")
		svgOut      = flag.String("svg", "", "write a placement diagram SVG to this path")
		pngOut      = flag.String("png", "", "write a placement diagram PNG to this path")
		listCatalog = flag.Bool("list", false, "list paper sizes and aspect ratios, then exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *listCatalog {
		printCatalog()
		return
	}

	var st domain.State
	if *statePath != "" {
		st, err = statefile.Load(*statePath)
		if err != nil {
			l.Error("state load failed", slog.String("path", *statePath), slog.Any("err", err))
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	} else {
		st = domain.State{
			PaperSizeID:       *paper,
			CustomPaperWidth:  *paperW,
			CustomPaperHeight: *paperH,
			AspectRatioID:     *ratio,
			CustomRatioWidth:  *ratioW,
			CustomRatioHeight: *ratioH,
			MinBorder:         *minBorder,
			EnableOffset:      *offsetH != 0 || *offsetV != 0,
			HorizontalOffset:  *offsetH,
			VerticalOffset:    *offsetV,
			IgnoreMinBorder:   *ignoreMin,
			IsLandscape:       *landscape,
			IsRatioFlipped:    *flipRatio,
			ShowBlades:        *showBlades,
		}
	}

	if *optimize {
		dims := border.ResolveDimensions(st)
		opts := border.SearchOptions{Step: cfg.Calculator.OptimizeStep, Window: cfg.Calculator.OptimizeWindow}
		best := border.OptimalMinBorder(dims.PaperWidth, dims.PaperHeight, dims.RatioWidth, dims.RatioHeight, st.MinBorder, opts)
		if best != st.MinBorder {
			l.Info("border optimized", slog.Float64("from", st.MinBorder), slog.Float64("to", best))
			st.MinBorder = best
		}
	}

	calc := border.Compute(st)

	if *saveState != "" {
		if err := statefile.Save(*saveState, st); err != nil {
			l.Error("state save failed", slog.Any("err", err))
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(calc); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	} else {
		printCalculation(calc)
	}

	eopt := export.Options{DPI: cfg.Export.DPI}
	exports := []struct {
		path string
		fn   func(domain.Calculation, string, export.Options) error
	}{
		{*pdfOut, export.WritePDF},
		{*svgOut, export.WriteSVG},
		{*pngOut, export.WritePNG},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.fn(calc, e.path, eopt); err != nil {
			l.Error("export failed", slog.String("path", e.path), slog.Any("err", err))
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		l.Info("diagram written", slog.String("path", e.path))
	}
}

func printCalculation(c domain.Calculation) {
	fmt.Printf("Paper:   %gx%g in (easel: %s)\n", c.PaperWidth, c.PaperHeight, c.EaselLabel)
	fmt.Printf("Print:   %.2fx%.2f in (%.1f%% x %.1f%%)\n",
		c.PrintWidth, c.PrintHeight, c.PrintWidthPercent, c.PrintHeightPercent)
	fmt.Printf("Borders: L %.2f  R %.2f  T %.2f  B %.2f in\n",
		c.LeftBorder, c.RightBorder, c.TopBorder, c.BottomBorder)
	fmt.Printf("Blades:  L %.2f  R %.2f  T %.2f  B %.2f in\n",
		c.BladeReadingLeft, c.BladeReadingRight, c.BladeReadingTop, c.BladeReadingBottom)
	for _, w := range c.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}

func printCatalog() {
	fmt.Println("Paper sizes:")
	for _, p := range border.PaperSizes {
		fmt.Printf("  %-7s %gx%g in\n", p.ID, p.Size.Width, p.Size.Height)
	}
	fmt.Println("Aspect ratios:")
	for _, r := range border.AspectRatios {
		fmt.Printf("  %-7s %s\n", r.ID, r.Label)
	}
	fmt.Println("Use \"custom\" with the custom dimension flags for anything else.")
}
