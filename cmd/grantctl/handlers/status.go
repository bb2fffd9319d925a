package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/grantthrive/grantctl/internal/api"
	"github.com/grantthrive/grantctl/internal/util/async"
)

// StatusReport is the combined result of the status checks.
type StatusReport struct {
	APIURL string      `json:"apiUrl"`
	Health *api.Health `json:"health,omitempty"`
	Status *api.Status `json:"status,omitempty"`
	User   *api.User   `json:"user,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}

// ErrUnhealthy is returned when the API is unreachable or unhealthy.
var ErrUnhealthy = errors.New("GrantThrive API is not healthy")

// Status checks API health, version and the signed in user in parallel.
func Status(ctx context.Context, jsonOutput bool) error {
	apiClient, _, err := client(ctx)
	if err != nil {
		return err
	}

	report := &StatusReport{APIURL: apiClient.BaseURL()}
	failed := async.Errors(ctx, []async.Task{
		{Name: "health", Func: func(ctx context.Context) (err error) {
			report.Health, err = apiClient.Health(ctx)
			return err
		}},
		{Name: "status", Func: func(ctx context.Context) (err error) {
			report.Status, err = apiClient.Status(ctx)
			return err
		}},
		{Name: "user", Func: func(ctx context.Context) (err error) {
			report.User, err = apiClient.CurrentUser(ctx)
			return err
		}},
	})
	for name, err := range failed {
		if name == "user" && errors.Is(err, api.ErrUnauthorized) {
			continue
		}
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
	}
	sort.Strings(report.Errors)

	if jsonOutput {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printStatus(report)
	}

	if report.Health == nil || !report.Health.Healthy() {
		return ErrUnhealthy
	}
	return nil
}

func printStatus(r *StatusReport) {
	fmt.Printf("API: %s\n\n", r.APIURL)

	if r.Health != nil {
		printRow("Health", r.Health.Healthy(), r.Health.Status)
		if r.Health.Database != "" {
			printRow("Database", r.Health.Database == "connected", r.Health.Database)
		}
	} else {
		printRow("Health", false, "unreachable")
	}
	if r.Status != nil {
		printRow("API version", true, r.Status.APIVersion)
	}
	if r.User != nil {
		printRow("Signed in", true, fmt.Sprintf("%s (%s)", r.User.Email, r.User.Role))
	} else {
		printRow("Signed in", false, "run 'grantctl login'")
	}

	for _, e := range r.Errors {
		fmt.Printf("\n  %s", e)
	}
	if len(r.Errors) > 0 {
		fmt.Println()
	}
}

// printRow prints a status row with an indicator.
func printRow(name string, ok bool, extra string) {
	indicator := "[OK]"
	if !ok {
		indicator = "[!!]"
	}
	if extra != "" {
		fmt.Printf("  %s  %-12s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}
