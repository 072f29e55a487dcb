package service

import (
	"sort"

	"bloodlink/internal/domain/entity"
	"bloodlink/pkg/geo"

	"github.com/sirupsen/logrus"
)

// AlertMatch is a blood request annotated with the computed distance
// from the donor. Built per invocation, never persisted.
type AlertMatch struct {
	Request    entity.BloodRequest
	DistanceKm float64
}

// AlertMatcher selects which open blood requests a donor should be
// alerted about. It performs no writes and holds no state between
// invocations, so a single instance is safe to share across requests.
type AlertMatcher struct {
	log *logrus.Logger
}

func NewAlertMatcher(log *logrus.Logger) *AlertMatcher {
	return &AlertMatcher{log: log}
}

// Match filters requests by the donor's blood group, urgency preference
// and alert radius, then orders them nearest first. The caller resolves
// the donor and guarantees origin is the donor's coordinate pair.
//
// A request whose stored coordinates fail validation is skipped rather
// than failing the batch, so one malformed record cannot hide the rest.
func (m *AlertMatcher) Match(donor *entity.DonorProfile, origin geo.Coordinate, requests []entity.BloodRequest) []AlertMatch {
	matches := []AlertMatch{}

	if !donor.WantsAlerts() {
		return matches
	}

	for _, req := range requests {
		// Exact group match only; no ABO-compatibility expansion.
		if req.BloodGroup != donor.BloodGroup {
			continue
		}
		if donor.UrgencyLevel != entity.UrgencyLevelAll && req.Urgency != donor.UrgencyLevel {
			continue
		}

		distance, err := geo.DistanceKm(origin, geo.Coordinate{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		if err != nil {
			m.log.Warnf("Skipping request %s with invalid coordinates: %+v", req.ID, err)
			continue
		}

		// Written so a non-finite distance can never slip through.
		if !(distance <= donor.AlertRadiusKm) {
			continue
		}

		matches = append(matches, AlertMatch{Request: req, DistanceKm: distance})
	}

	// Nearest first; ties go to the oldest request.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Request.CreatedAt.Before(matches[j].Request.CreatedAt)
	})

	return matches
}
