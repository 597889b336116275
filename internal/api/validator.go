// ABOUTME: Boundary validation for inbound request payloads
// ABOUTME: Collects the first failure per field into a single JSON-friendly error

package api

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

type validator struct {
	failures map[string]string
}

func newValidator() *validator {
	return &validator{failures: make(map[string]string)}
}

// check records msg for field when cond is false. Only the first failure
// per field is kept.
func (v *validator) check(cond bool, field, msg string) {
	if cond {
		return
	}
	if _, ok := v.failures[field]; !ok {
		v.failures[field] = msg
	}
}

func (v *validator) checkEmail(email string) {
	v.check(email != "", "email", "must be provided")
	v.check(emailRegexp.MatchString(email), "email", "must be a valid email address")
}

func (v *validator) checkPassword(password string) {
	v.check(password != "", "password", "must be provided")
	v.check(len(password) >= 8, "password", "must be at least 8 characters")
	v.check(len(password) <= 72, "password", "must be at most 72 characters")
}

func (v *validator) checkTitle(title string) {
	v.check(title != "", "title", "must be provided")
	v.check(len(title) <= 255, "title", "must be at most 255 characters")
}

// errParam reports a single bad query parameter.
func errParam(field, msg string) error {
	return fmt.Errorf("%s %s", field, msg)
}

func (v *validator) err() error {
	if len(v.failures) == 0 {
		return nil
	}
	fields := make([]string, 0, len(v.failures))
	for field := range v.failures {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, v.failures[field]))
	}
	return errors.New(strings.Join(parts, "; "))
}
