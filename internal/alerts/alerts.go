package alerts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"estate-console/internal/domain"
)

// Alert status values for a studio's current tenancy.
const (
	StatusNotRented    = "not-rented"
	StatusOverdue      = "overdue"
	StatusExpiringSoon = "expiring-soon"
	StatusActive       = "active"
)

// Priority values for alerts that need attention.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Thresholds for the renewal window. A tenancy inside expiringSoonDays of its
// end date raises an alert; inside highPriorityDays (or overdue) it is high
// priority. Off-by-one changes here change which tenants get contacted.
const (
	expiringSoonDays = 5
	highPriorityDays = 2
)

// Alert is the computed renewal state for one studio.
type Alert struct {
	NeedsAlert    bool   `json:"needs_alert"`
	Status        string `json:"status"`
	Priority      string `json:"priority,omitempty"`
	DaysRemaining int    `json:"days_remaining"`
	HasDays       bool   `json:"has_days"`
	Message       string `json:"message,omitempty"`
}

// StudioAlert is an Alert joined with the studio and its parent apartment,
// as rendered on the renewal dashboard.
type StudioAlert struct {
	Alert
	StudioID      string `json:"studio_id"`
	StudioTitle   string `json:"studio_title"`
	TenantName    string `json:"tenant_name"`
	TenantContact string `json:"tenant_contact"`
	ApartmentID   string `json:"apartment_id"`
	ApartmentName string `json:"apartment_name"`
	EndDate       string `json:"end_date"`
}

// Presentation is the display mapping for an alert. Lookup only, no
// business logic.
type Presentation struct {
	ClassName string `json:"class_name"`
	Icon      string `json:"icon"`
	Title     string `json:"title"`
}

// endDateLayouts are the shapes the backend stores end dates in: a bare
// calendar day, or an ISO-8601 timestamp with or without a zone suffix.
var endDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func parseEndDate(endDate string, loc *time.Location) (time.Time, bool) {
	for _, layout := range endDateLayouts {
		if t, err := time.ParseInLocation(layout, endDate, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysRemaining returns the number of calendar days from now until endDate,
// false when endDate is empty or unparseable. Only the date component of a
// timestamp end date matters; both sides are truncated to midnight first, so
// a tenancy ending today yields 0 regardless of the time of day, and the
// result never depends on clock components.
func DaysRemaining(endDate string, now time.Time) (int, bool) {
	if endDate == "" {
		return 0, false
	}
	end, ok := parseEndDate(endDate, now.Location())
	if !ok {
		return 0, false
	}
	endMid := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, now.Location())
	nowMid := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round, not truncate: a DST transition makes the span 23 or 25 hours.
	return int(math.Round(endMid.Sub(nowMid).Hours() / 24)), true
}

// CheckRenewal computes the renewal alert for a single studio.
func CheckRenewal(s *domain.Studio, now time.Time) Alert {
	if s == nil || s.Rental == nil || !s.Rental.IsRented || s.Rental.EndDate == "" {
		return Alert{NeedsAlert: false, Status: StatusNotRented}
	}

	days, ok := DaysRemaining(s.Rental.EndDate, now)
	if !ok {
		return Alert{NeedsAlert: false, Status: StatusNotRented}
	}

	switch {
	case days < 0:
		return Alert{
			NeedsAlert:    true,
			Status:        StatusOverdue,
			Priority:      PriorityHigh,
			DaysRemaining: days,
			HasDays:       true,
			Message:       fmt.Sprintf("Rental expired %d days ago", -days),
		}
	case days <= expiringSoonDays:
		priority := PriorityMedium
		if days <= highPriorityDays {
			priority = PriorityHigh
		}
		msg := "Rental expires today!"
		if days == 1 {
			msg = "Rental expires in 1 day"
		} else if days > 1 {
			msg = fmt.Sprintf("Rental expires in %d days", days)
		}
		return Alert{
			NeedsAlert:    true,
			Status:        StatusExpiringSoon,
			Priority:      priority,
			DaysRemaining: days,
			HasDays:       true,
			Message:       msg,
		}
	default:
		return Alert{
			NeedsAlert:    false,
			Status:        StatusActive,
			DaysRemaining: days,
			HasDays:       true,
		}
	}
}

// StudiosNeedingRenewal flattens every studio across all apartments, keeps
// the ones whose tenancy needs attention, and sorts high priority first,
// then most urgent (ascending days remaining) within each priority band.
// The sort is stable so same-key studios keep their apartment order.
func StudiosNeedingRenewal(apartments []domain.Apartment, now time.Time) []StudioAlert {
	var out []StudioAlert
	for ai := range apartments {
		apt := &apartments[ai]
		for si := range apt.Studios {
			studio := &apt.Studios[si]
			alert := CheckRenewal(studio, now)
			if !alert.NeedsAlert {
				continue
			}
			sa := StudioAlert{
				Alert:         alert,
				StudioID:      studio.ID,
				StudioTitle:   studio.Title,
				ApartmentID:   apt.ID,
				ApartmentName: apt.Name,
			}
			if studio.Rental != nil {
				sa.TenantName = studio.Rental.TenantName
				sa.TenantContact = studio.Rental.TenantContact
				sa.EndDate = studio.Rental.EndDate
			}
			out = append(out, sa)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityRank(out[i].Priority), priorityRank(out[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return out[i].DaysRemaining < out[j].DaysRemaining
	})
	return out
}

func priorityRank(p string) int {
	if p == PriorityHigh {
		return 0
	}
	return 1
}

// FormatMessage maps an alert to its display presentation.
func FormatMessage(a Alert) Presentation {
	switch a.Status {
	case StatusOverdue:
		return Presentation{ClassName: "alert-overdue", Icon: "🚨", Title: "Rental Overdue"}
	case StatusExpiringSoon:
		icon := "📅"
		if a.HasDays && a.DaysRemaining <= highPriorityDays {
			icon = "⚠️"
		}
		return Presentation{ClassName: "alert-expiring", Icon: icon, Title: "Rental Expiring Soon"}
	default:
		return Presentation{ClassName: "alert-info", Icon: "ℹ️", Title: "Rental Status"}
	}
}
