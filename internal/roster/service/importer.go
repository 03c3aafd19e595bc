package service

import (
	"errors"
	"fmt"
	"strings"

	"coachtrack/internal/roster/model"
	"coachtrack/internal/storage"
)

// Importer turns parsed spreadsheet rows into reviewable ImportRows and
// commits the operator-approved batch.
type Importer struct {
	Coaches storage.CoachRepositoryInterface
}

func NewImporter(coaches storage.CoachRepositoryInterface) *Importer {
	return &Importer{Coaches: coaches}
}

// BuildRows maps sheet rows through the operator's column mapping, collapses
// duplicate (organization, first, last) rows within the batch, and resolves
// each organization against the registry. Rows without a usable name are
// dropped before matching.
func (imp *Importer) BuildRows(rows []map[string]string, mapping model.Mapping, matcher *Matcher) []model.ImportRow {
	out := make([]model.ImportRow, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, rec := range rows {
		first, last := parseName(rec, mapping)
		if first == "" || last == "" {
			continue
		}
		orgText := strings.TrimSpace(rec[mapping.OrgKey])

		key := strings.ToLower(orgText) + "\x00" + strings.ToLower(first) + "\x00" + strings.ToLower(last)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		row := model.ImportRow{
			OrgText:   orgText,
			FirstName: first,
			LastName:  last,
			Email:     strings.TrimSpace(rec[mapping.EmailKey]),
			Phone:     strings.TrimSpace(rec[mapping.PhoneKey]),
			Title:     strings.TrimSpace(rec[mapping.TitleKey]),
		}
		school, tier := matcher.Resolve(orgText)
		row.Tier = tier
		if school != nil {
			row.SchoolID = school.ID
			row.SchoolName = school.Name
			row.Include = true
		}
		out = append(out, row)
	}
	return out
}

// parseName reads first/last from two columns, or splits a single full-name
// column: first token is the first name, the rest joined is the last name.
func parseName(rec map[string]string, mapping model.Mapping) (first, last string) {
	if mapping.FirstKey != "" || mapping.LastKey != "" {
		return strings.TrimSpace(rec[mapping.FirstKey]), strings.TrimSpace(rec[mapping.LastKey])
	}
	full := strings.Fields(strings.TrimSpace(rec[mapping.FullNameKey]))
	if len(full) == 0 {
		return "", ""
	}
	if len(full) == 1 {
		return full[0], ""
	}
	return full[0], strings.Join(full[1:], " ")
}

// Commit inserts the approved rows, skipping excluded or unresolved rows and
// rows whose (school, first, last) already exists case-insensitively.
func (imp *Importer) Commit(rows []model.ImportRow) (model.CommitResult, error) {
	var res model.CommitResult
	for _, row := range rows {
		if !row.Include || row.SchoolID == 0 {
			res.Skipped++
			continue
		}
		_, err := imp.Coaches.FindByName(row.SchoolID, row.FirstName, row.LastName)
		switch {
		case err == nil:
			res.Skipped++
			continue
		case !errors.Is(err, storage.ErrNotFound):
			return res, fmt.Errorf("check existing coach: %w", err)
		}
		coach := storage.Coach{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
			Phone:     row.Phone,
			Title:     row.Title,
			SchoolID:  row.SchoolID,
		}
		if err := imp.Coaches.Create(&coach); err != nil {
			return res, fmt.Errorf("insert coach %s %s: %w", row.FirstName, row.LastName, err)
		}
		res.Inserted++
	}
	return res, nil
}
