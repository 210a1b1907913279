package service

import (
	"context"
	"fmt"

	"rehearsal-service/api"
	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/models"
)

// CheckToken validates a single constraint token and formats what parsed.
func (s *Service) CheckToken(token string) api.TokenCheckResponse {
	cs, errMsg := constraint.ValidateToken(token)
	if errMsg != "" {
		return api.TokenCheckResponse{Token: token, Valid: false, Error: errMsg}
	}

	formatted := make([]string, 0, len(cs))
	for _, c := range cs {
		formatted = append(formatted, c.String())
	}

	return api.TokenCheckResponse{Token: token, Valid: true, Constraints: formatted}
}

// ValidateRecords checks every token of every record and tallies the run.
// Rows are numbered from 1 in input order. Empty constraint cells count as
// empty rows, not as errors.
func ValidateRecords(records []api.ConstraintRecord) ([]api.ValidationError, api.ValidationStats) {
	var errs []api.ValidationError
	stats := api.ValidationStats{TotalRows: len(records)}

	for i, rec := range records {
		tokens := models.SplitTokens(rec.Constraints)
		if len(tokens) == 0 {
			stats.EmptyRows++
			continue
		}

		for tokenNum, token := range tokens {
			stats.TotalTokens++

			_, errMsg := constraint.ValidateToken(token)
			if errMsg == "" {
				stats.ValidTokens++
				continue
			}

			stats.InvalidTokens++
			errs = append(errs, api.ValidationError{
				EntityID: rec.ID,
				Row:      i + 1,
				TokenNum: tokenNum + 1,
				Token:    token,
				Error:    errMsg,
			})
		}
	}

	return errs, stats
}

// ValidateRoster runs bulk validation over everyone in storage.
func (s *Service) ValidateRoster(ctx context.Context) ([]api.ValidationError, api.ValidationStats, error) {
	const op = "service.ValidateRoster"

	people, err := s.store.ListPeople(ctx, nil)
	if err != nil {
		return nil, api.ValidationStats{}, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]api.ConstraintRecord, 0, len(people))
	for _, p := range people {
		records = append(records, api.ConstraintRecord{ID: p.ID, Constraints: p.Constraints})
	}

	errs, stats := ValidateRecords(records)
	return errs, stats, nil
}
