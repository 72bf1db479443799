package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/internal/core"
	"github.com/antoinelmariel-ux/compliance-navigator-sub000/internal/repository"
	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	dir := flag.String("dir", cfg.DataDir, "data directory")
	answersPath := flag.String("answers", "", "JSON answers file (overrides the stored session)")
	limit := flag.Int("limit", cfg.RecommendLimit, "max recommendations to print")
	compact := flag.Bool("compact", false, "compact the session journal and exit")
	flag.Parse()

	logger := core.NewLogger(cfg.LogLevel)
	repo := repository.NewRepository(*dir)

	lock := repository.NewFileLock(repo.LockPath(), "cli")
	if err := lock.Acquire(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release lock", "error", err)
		}
	}()

	if *compact {
		if err := repo.CompactSession(); err != nil {
			fmt.Printf("❌ Compaction failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Session journal compacted")
		return
	}

	questionnaire, err := repo.ReadQuestionnaire()
	if err != nil {
		fmt.Printf("❌ Failed to read questionnaire: %v\n", err)
		os.Exit(1)
	}

	answers, err := loadAnswers(repo, *answersPath)
	if err != nil {
		fmt.Printf("❌ Failed to load answers: %v\n", err)
		os.Exit(1)
	}

	analyzer := core.NewAnalyzer(logger, *limit)
	report := analyzer.Analyze(questionnaire, answers)
	printReport(questionnaire, report)
}

func loadAnswers(repo *repository.Repository, path string) (schema.AnswerMap, error) {
	if path == "" {
		session, err := repo.ReadSession()
		if err != nil {
			return nil, err
		}
		return session.Answers, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var answers schema.AnswerMap
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func printReport(q *schema.Questionnaire, report *core.Report) {
	fmt.Printf("📋 %s\n", q.Metadata.Name)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	fmt.Printf("\n👁  Visible questions: %d/%d\n", len(report.VisibleQuestionIDs), len(q.Questions))

	if len(report.Analysis.Risks) > 0 {
		fmt.Printf("\n⚠️  Risks (%d, total score %.1f, complexity %s)\n",
			len(report.Analysis.Risks), report.Analysis.TotalScore, report.Analysis.Complexity)
		for _, risk := range report.Analysis.Risks {
			fmt.Printf("   • %s [%s, %.1f]\n", risk.Label, risk.Severity, risk.Score)
		}
	} else {
		fmt.Println("\n✅ No rules fired")
	}

	for _, finding := range report.TimingFindings {
		switch finding.Result.Status {
		case schema.TimingBreach:
			fmt.Printf("\n⏱  Timing breach between %s and %s: %.0f days (%.1f weeks)",
				finding.StartQuestionID, finding.EndQuestionID,
				finding.Result.DiffDays, finding.Result.DiffWeeks)
			if finding.Result.TeamID != "" {
				fmt.Printf(" (team %s requirement)", finding.Result.TeamID)
			}
			fmt.Println()
		case schema.TimingUnknown:
			fmt.Printf("\n⏱  Timing between %s and %s: dates still to collect\n",
				finding.StartQuestionID, finding.EndQuestionID)
		}
	}

	if len(report.Committees) > 0 {
		fmt.Printf("\n🏛  Committees required (%d)\n", len(report.Committees))
		for _, committee := range report.Committees {
			fmt.Printf("   • %s", committee.Name)
			if len(committee.Emails) > 0 {
				fmt.Printf(" → %s", committee.Emails[0])
			}
			fmt.Println()
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Printf("\n🏆 Recommendations\n")
		for i, rec := range report.Recommendations {
			fmt.Printf("   %d. %s (score %.1f)\n", i+1, rec.Entry.Name, rec.Score)
		}
	}
}
