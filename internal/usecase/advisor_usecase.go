package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

const (
	advisorSystemPrompt = "You are a senior CPA and financial strategist. Provide high-level advice " +
		"that goes beyond simple summaries. Use professional terminology and markdown for clear structure."

	adviceRecentLimit = 15
	adviceTrendMonths = 6
)

// AdvisorUseCase assembles bookkeeping snapshots and asks the external
// advice collaborator for commentary. The collaborator is an opaque
// black box: any failure or empty reply degrades to "no advice", never
// an error to the caller.
type AdvisorUseCase struct {
	txRepo  TransactionRepository
	catRepo CategoryRepository
	client  AdviceClient
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewAdvisorUseCase creates a new AdvisorUseCase.
func NewAdvisorUseCase(txRepo TransactionRepository, catRepo CategoryRepository, client AdviceClient, logger zerolog.Logger, m *metrics.Metrics) *AdvisorUseCase {
	return &AdvisorUseCase{
		txRepo:  txRepo,
		catRepo: catRepo,
		client:  client,
		logger:  logger,
		metrics: m,
	}
}

func (uc *AdvisorUseCase) recordAdvice(outcome string, start time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.AdviceRequests.WithLabelValues(outcome).Inc()
	uc.metrics.AdviceDuration.Observe(time.Since(start).Seconds())
}

type adviceTransaction struct {
	Date        string `json:"date"`
	Description string `json:"desc"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// Advice generates free-text commentary from a snapshot of the ledger:
// the most recent transactions with resolved category names, per-category
// monthly averages, and the trailing six-month trend series. An empty
// string means no advice is available.
func (uc *AdvisorUseCase) Advice(ctx context.Context) (string, error) {
	if uc.client == nil {
		return "", nil
	}
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(transactions) == 0 {
		return "", nil
	}
	categories, err := uc.catRepo.List(ctx)
	if err != nil {
		return "", err
	}

	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	if len(sorted) > adviceRecentLimit {
		sorted = sorted[len(sorted)-adviceRecentLimit:]
	}

	recent := make([]adviceTransaction, 0, len(sorted))
	for _, tx := range sorted {
		name, ok := names[tx.CategoryID]
		if !ok {
			name = "Uncategorized"
		}
		recent = append(recent, adviceTransaction{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Type:        string(tx.Type),
			Category:    name,
		})
	}

	averages := categoryAverages(transactions, categories)
	averageStrings := make(map[string]string, len(averages))
	for name, avg := range averages {
		averageStrings[name] = avg.StringFixed(2)
	}

	trends := monthlySeries(transactions)
	if len(trends) > adviceTrendMonths {
		trends = trends[len(trends)-adviceTrendMonths:]
	}

	averagesJSON, _ := json.Marshal(averageStrings)
	trendsJSON, _ := json.Marshal(trends)
	recentJSON, _ := json.Marshal(recent)

	var prompt strings.Builder
	prompt.WriteString("Analyze these financial records and provide 3-4 professional, strategic insights. ")
	prompt.WriteString("Focus on anomaly detection, efficiency improvements, and growth opportunities.\n")
	prompt.WriteString("Category Monthly Averages: ")
	prompt.Write(averagesJSON)
	prompt.WriteString("\nHistorical Trends (Last 6 Months): ")
	prompt.Write(trendsJSON)
	prompt.WriteString("\nRecent Transactions: ")
	prompt.Write(recentJSON)

	start := time.Now()
	advice, err := uc.client.GenerateAdvice(ctx, advisorSystemPrompt, prompt.String())
	if err != nil {
		uc.recordAdvice("error", start)
		uc.logger.Warn().Err(err).Msg("advice generation failed")
		return "", nil
	}
	uc.recordAdvice("ok", start)

	return strings.TrimSpace(advice), nil
}

// SuggestCategory asks the collaborator which existing category best
// matches a transaction description. The reply is only accepted when it
// names a known category; anything else degrades to no suggestion.
func (uc *AdvisorUseCase) SuggestCategory(ctx context.Context, description string) (string, error) {
	if uc.client == nil {
		return "", nil
	}
	categories, err := uc.catRepo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}

	prompt := "Based on the description \"" + description + "\", which of these categories best fits? Options: " +
		strings.Join(names, ", ") + ". Return only the category name."

	start := time.Now()
	reply, err := uc.client.GenerateAdvice(ctx, "", prompt)
	if err != nil {
		uc.recordAdvice("error", start)
		uc.logger.Warn().Err(err).Msg("category suggestion failed")
		return "", nil
	}
	uc.recordAdvice("ok", start)

	reply = strings.TrimSpace(reply)
	for _, name := range names {
		if strings.EqualFold(reply, name) {
			return name, nil
		}
	}

	return "", nil
}
