// Package seed loads chart-of-accounts templates into the registry.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
)

//go:embed templates/*.toml
var templates embed.FS

// Template is a named set of accounts for one accounting scheme.
type Template struct {
	Scheme   string            `toml:"scheme"`
	Accounts []TemplateAccount `toml:"account"`
}

// TemplateAccount is one account row of a template.
type TemplateAccount struct {
	Code   string `toml:"code"`
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Cash   bool   `toml:"cash"`
	Equity bool   `toml:"equity"`
}

// Result counts what Apply did.
type Result struct {
	Created int
	Skipped int
}

// Schemes lists the bundled templates.
func Schemes() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.ToUpper(strings.TrimSuffix(e.Name(), ".toml")))
	}
	slices.Sort(out)
	return out
}

// LoadTemplate decodes the bundled template for scheme.
func LoadTemplate(scheme string) (*Template, error) {
	name := "templates/" + strings.ToLower(strings.TrimSpace(scheme)) + ".toml"
	var tmpl Template
	md, err := toml.DecodeFS(templates, name, &tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: no chart template for scheme %q (available: %s): %v",
			apperrors.ErrValidation, scheme, strings.Join(Schemes(), ", "), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("template %s has unknown keys: %v", name, undecoded)
	}
	for i, a := range tmpl.Accounts {
		if !domain.ParseAccountType(a.Type).Valid() {
			return nil, fmt.Errorf("template %s account %d (%s): invalid type %q", name, i+1, a.Code, a.Type)
		}
	}
	return &tmpl, nil
}

// Apply creates every template account whose code is not registered yet.
func Apply(ctx context.Context, accounts portssvc.AccountSvcFacade, tmpl *Template, actor string, logger *slog.Logger) (Result, error) {
	var res Result
	for _, a := range tmpl.Accounts {
		_, err := accounts.CreateAccount(ctx, domain.CreateAccountInput{
			Code:        a.Code,
			Name:        a.Name,
			AccountType: domain.ParseAccountType(a.Type),
			Scheme:      tmpl.Scheme,
			IsCash:      a.Cash,
			IsEquity:    a.Equity,
		}, actor)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, apperrors.ErrDuplicateCode):
			logger.Debug("Account code already registered, skipping", slog.String("code", a.Code))
			res.Skipped++
		default:
			return res, fmt.Errorf("seeding account %s: %w", a.Code, err)
		}
	}
	logger.Info("Chart of accounts seeded",
		slog.String("scheme", tmpl.Scheme),
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}
