package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecbench/bench"
	"github.com/cwbudde/algo-vecbench/kernel"
)

var csvHeader = []string{"kernel", "variant", "n", "iters", "unroll_factor", "time_sec", "gflops", "checksum"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func writeText(w io.Writer, cfg bench.Config, res bench.Result, val *bench.Validation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Benchmark Results:\n")
	fmt.Fprintf(tw, "  Kernel:\t%v\n", cfg.Kernel)
	fmt.Fprintf(tw, "  Variant:\t%v\n", cfg.Variant)
	fmt.Fprintf(tw, "  Size:\t%d\n", cfg.N)
	fmt.Fprintf(tw, "  Iterations:\t%d\n", cfg.Iterations)
	fmt.Fprintf(tw, "  Unroll Factor:\t%d\n", cfg.Unroll)
	if res.Impl != "" {
		fmt.Fprintf(tw, "  Implementation:\t%s\n", res.Impl)
	}
	fmt.Fprintf(tw, "  Total Time (s):\t%s\n", formatFloat(res.Seconds))
	fmt.Fprintf(tw, "  Performance (GFLOPS):\t%s\n", formatFloat(res.GFLOPS))
	fmt.Fprintf(tw, "  Checksum:\t%s\n", formatFloat32(res.Checksum))
	if val != nil {
		fmt.Fprintf(tw, "  Reference:\t%s\n", formatFloat(val.Reference))
		fmt.Fprintf(tw, "  Relative Error:\t%.3g (tolerance %.3g, ok=%t)\n", val.RelErr, val.Tolerance, val.OK)
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, cfg bench.Config, res bench.Result, val *bench.Validation, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		h := csvHeader
		if val != nil {
			h = append(h[:len(h):len(h)], "reference", "rel_err", "ok")
		}
		if err := cw.Write(h); err != nil {
			return err
		}
	}

	row := []string{
		cfg.Kernel.String(),
		cfg.Variant.String(),
		strconv.Itoa(cfg.N),
		strconv.Itoa(cfg.Iterations),
		strconv.Itoa(cfg.Unroll),
		formatFloat(res.Seconds),
		formatFloat(res.GFLOPS),
		formatFloat32(res.Checksum),
	}
	if val != nil {
		row = append(row, formatFloat(val.Reference), formatFloat(val.RelErr), strconv.FormatBool(val.OK))
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

type jsonValidation struct {
	Reference float64 `json:"reference"`
	AbsErr    float64 `json:"abs_err"`
	RelErr    float64 `json:"rel_err"`
	Tolerance float64 `json:"tolerance"`
	OK        bool    `json:"ok"`
}

type jsonRecord struct {
	Kernel         string          `json:"kernel"`
	Variant        string          `json:"variant"`
	N              int             `json:"n"`
	Iterations     int             `json:"iters"`
	Unroll         int             `json:"unroll_factor"`
	Implementation string          `json:"implementation,omitempty"`
	Seconds        float64         `json:"time_sec"`
	GFLOPS         *float64        `json:"gflops"` // null when not finite
	Checksum       *float32        `json:"checksum"`
	Validation     *jsonValidation `json:"validation,omitempty"`
}

func finite64(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func finite32(v float32) *float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return nil
	}
	return &v
}

func writeJSON(w io.Writer, cfg bench.Config, res bench.Result, val *bench.Validation) error {
	rec := jsonRecord{
		Kernel:         cfg.Kernel.String(),
		Variant:        cfg.Variant.String(),
		N:              cfg.N,
		Iterations:     cfg.Iterations,
		Unroll:         cfg.Unroll,
		Implementation: res.Impl,
		Seconds:        res.Seconds,
		GFLOPS:         finite64(res.GFLOPS),
		Checksum:       finite32(res.Checksum),
	}
	if val != nil {
		rec.Validation = &jsonValidation{
			Reference: val.Reference,
			AbsErr:    val.AbsErr,
			RelErr:    val.RelErr,
			Tolerance: val.Tolerance,
			OK:        val.OK,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func printList(w io.Writer) error {
	fmt.Fprintf(w, "CPU: %v\n\n", kernel.Features())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Implementation\tRequires\tPriority\tSupported\tSelected\n")
	fmt.Fprintf(tw, "--------------\t--------\t--------\t---------\t--------\n")
	for _, info := range kernel.Implementations() {
		selected := ""
		if info.Selected {
			selected = "*"
		}
		fmt.Fprintf(tw, "%s\t%v\t%d\t%t\t%s\n", info.Name, info.SIMDLevel, info.Priority, info.Supported, selected)
	}
	return tw.Flush()
}
