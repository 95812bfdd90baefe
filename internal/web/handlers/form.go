package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kozaktomas/card-grid/internal/constants"
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/sheet"
)

// formRequest reads the job fields of a render form. Empty fields are
// left unset so the configured defaults apply.
func formRequest(r *http.Request) (sheet.Request, error) {
	req := sheet.Request{
		Paper:      r.FormValue(constants.FieldPaper),
		Grid:       r.FormValue(constants.FieldGrid),
		Fit:        r.FormValue(constants.FieldFit),
		Background: r.FormValue(constants.FieldBackground),
		Format:     r.FormValue(constants.FieldFormat),
	}

	var err error
	if req.WidthMM, err = formFloatValue(r, constants.FieldWidthMM); err != nil {
		return sheet.Request{}, err
	}
	if req.HeightMM, err = formFloatValue(r, constants.FieldHeightMM); err != nil {
		return sheet.Request{}, err
	}
	if req.Columns, err = formInt(r, constants.FieldColumns); err != nil {
		return sheet.Request{}, err
	}
	if req.Rows, err = formInt(r, constants.FieldRows); err != nil {
		return sheet.Request{}, err
	}
	if req.SpacingMM, err = formFloat(r, constants.FieldSpacingMM); err != nil {
		return sheet.Request{}, err
	}
	if req.MarginMM, err = formFloat(r, constants.FieldMarginMM); err != nil {
		return sheet.Request{}, err
	}
	return req, nil
}

func formInt(r *http.Request, key string) (*int, error) {
	s := strings.TrimSpace(r.FormValue(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", layout.ErrInvalidParameter, key, s)
	}
	return &n, nil
}

func formFloat(r *http.Request, key string) (*float64, error) {
	s := strings.TrimSpace(r.FormValue(key))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", layout.ErrInvalidParameter, key, s)
	}
	return &f, nil
}

// formFloatValue is formFloat with zero standing in for an empty field.
func formFloatValue(r *http.Request, key string) (float64, error) {
	f, err := formFloat(r, key)
	if err != nil || f == nil {
		return 0, err
	}
	return *f, nil
}
