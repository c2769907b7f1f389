package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

// serviceTimeout bounds the reachability probe.
const serviceTimeout = 5 * time.Second

// Lister fetches the activity listing.
type Lister interface {
	ListActivities(ctx context.Context) ([]activity.Activity, error)
}

// ServiceCheck verifies the activity service answers and reports how many
// activities still take signups.
type ServiceCheck struct {
	lister    Lister
	serverURL string
}

// NewServiceCheck creates a new service reachability check.
func NewServiceCheck(lister Lister, serverURL string) *ServiceCheck {
	return &ServiceCheck{
		lister:    lister,
		serverURL: serverURL,
	}
}

func (c *ServiceCheck) Name() string {
	return "Activity Service"
}

func (c *ServiceCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	activities, err := c.lister.ListActivities(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Reachable",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s: %v", c.serverURL, err),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "Reachable",
		Status: StatusPass,
		Detail: c.serverURL,
	})

	if len(activities) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "Activities",
			Status: StatusWarn,
			Detail: "service lists no activities",
		})
		return result
	}

	open := 0
	for _, a := range activities {
		if !a.IsFull() {
			open++
		}
	}

	item := CheckItem{
		Label:  "Activities",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d listed, %d open for signup", len(activities), open),
	}
	if open == 0 {
		item.Status = StatusWarn
	}
	result.Items = append(result.Items, item)

	return result
}
