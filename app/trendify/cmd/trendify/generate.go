package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/trendify/app/trendify/pkg/engine"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
	"github.com/iWorld-y/trendify/app/trendify/pkg/strategy"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		req     strategy.Request
		outDir  string
		formats []string
		page    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a content strategy and write export files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := engine.NewEngine(ctx, opts.cfg)
			if err != nil {
				return err
			}

			report, err := eng.Run(ctx, req)
			if err != nil {
				return err
			}

			artifacts, err := report.Artifacts(formats...)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = opts.cfg.Export.Dir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("无法创建输出目录: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, a := range artifacts {
				path := filepath.Join(outDir, a.Filename)
				if err := os.WriteFile(path, a.Data, 0o644); err != nil {
					return fmt.Errorf("写入 %s 失败: %w", path, err)
				}
				logger.Log.Infof("已导出 %s", path)
				fmt.Fprintf(out, "wrote %s\n", path)
			}

			if page {
				path, err := writePage(outDir, report, eng.AIEnabled())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", path)
			}

			printSummary(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Topic, "topic", "t", export.DefaultTopic, "content topic")
	cmd.Flags().StringVarP(&req.Audience, "audience", "a", export.Audiences[0], "target audience")
	cmd.Flags().StringVarP(&req.Goal, "goal", "g", export.Goals[0], "primary goal")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringSliceVar(&formats, "formats", engine.AllFormats(), "export formats: json,csv,pdf,xlsx,png")
	cmd.Flags().BoolVar(&page, "page", true, "also write index.html")
	return cmd
}

func writePage(dir string, report *engine.Report, aiEnabled bool) (string, error) {
	data, err := report.Page(aiEnabled)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := export.RenderPage(&buf, data); err != nil {
		return "", fmt.Errorf("页面渲染失败: %w", err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return path, nil
}

func printSummary(cmd *cobra.Command, report *engine.Report) {
	out := cmd.OutOrStdout()
	res := report.Result
	fmt.Fprintf(out, "\ngeneration %s (%s)\n", res.ID, res.Outcome)
	if res.Notice != "" {
		fmt.Fprintln(out, res.Notice)
	}
	fmt.Fprintf(out, "trend (%s): %v\n", report.Trend.Provenance, report.Trend.Values)

	fmt.Fprintln(out, "\nSubtopics:")
	for i, s := range res.Strategy.Subtopics {
		fmt.Fprintf(out, "  %d: %s\n", i, s.Title)
	}
	fmt.Fprintln(out, "Formats:")
	for _, f := range res.Strategy.Formats {
		if f.Reason != "" {
			fmt.Fprintf(out, "  - %s: %s\n", f.Name, f.Reason)
		} else {
			fmt.Fprintf(out, "  - %s\n", f.Name)
		}
	}
	fmt.Fprintln(out, "Calendar (first 10 days):")
	for _, e := range res.Strategy.FirstDays(10) {
		fmt.Fprintf(out, "  Day %d: %s (%s)\n", e.Day, e.Title, e.Format)
	}
}
