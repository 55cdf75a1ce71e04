package dto

import (
	"fmt"
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils"
)

// LineRequest is one requested debit or credit leg. Amounts accept "," or "." as separator.
type LineRequest struct {
	AccountID string `json:"accountID" binding:"required"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
}

// PostEntryRequest defines the data needed to post a journal entry.
type PostEntryRequest struct {
	Date        string        `json:"date" binding:"required"`
	Description string        `json:"description" binding:"max=255"`
	Journal     string        `json:"journal" binding:"omitempty,max=50"`
	Scheme      string        `json:"scheme" binding:"omitempty,max=10"`
	Lines       []LineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToInput parses dates and amounts. Malformed values are rejected.
func (r PostEntryRequest) ToInput() (domain.PostEntryInput, error) {
	date, err := utils.ParseDate(r.Date)
	if err != nil {
		return domain.PostEntryInput{}, err
	}
	lines := make([]domain.LineInput, len(r.Lines))
	for i, l := range r.Lines {
		debit, err := utils.ParseAmount(l.Debit)
		if err != nil {
			return domain.PostEntryInput{}, fmt.Errorf("line %d debit: %w", i+1, err)
		}
		credit, err := utils.ParseAmount(l.Credit)
		if err != nil {
			return domain.PostEntryInput{}, fmt.Errorf("line %d credit: %w", i+1, err)
		}
		lines[i] = domain.LineInput{AccountID: l.AccountID, Debit: debit, Credit: credit}
	}
	return domain.PostEntryInput{
		Date:        date,
		Description: r.Description,
		Journal:     r.Journal,
		Scheme:      r.Scheme,
		Lines:       lines,
	}, nil
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string         `json:"lineID"`
	AccountID string         `json:"accountID"`
	Position  int            `json:"position"`
	Debit     AmountResponse `json:"debit"`
	Credit    AmountResponse `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string         `json:"entryID"`
	Date        string         `json:"date"`
	Description string         `json:"description"`
	Journal     string         `json:"journal"`
	Scheme      string         `json:"scheme"`
	Lines       []LineResponse `json:"lines,omitempty"`
	TotalDebit  AmountResponse `json:"totalDebit,omitempty"`
	TotalCredit AmountResponse `json:"totalCredit,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	CreatedBy   string         `json:"createdBy"`
}

// ToEntryResponse converts a domain.JournalEntry. Totals are set only when lines are loaded.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		Date:        utils.FormatDate(e.EntryDate),
		Description: e.Description,
		Journal:     e.Journal,
		Scheme:      e.Scheme,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = LineResponse{
				LineID:    l.LineID,
				AccountID: l.AccountID,
				Position:  l.Position,
				Debit:     amount(l.Debit),
				Credit:    amount(l.Credit),
			}
		}
		resp.TotalDebit = amount(e.TotalDebit())
		resp.TotalCredit = amount(e.TotalCredit())
	}
	return resp
}

// ListEntriesParams defines query parameters for paging the journal book.
type ListEntriesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is one page of the journal book.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToListEntriesResponse converts a page of entries.
func ToListEntriesResponse(entries []domain.JournalEntry, next *string) ListEntriesResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: out, NextToken: next}
}
