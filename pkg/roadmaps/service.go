package roadmaps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// ErrUnsupportedField is returned when a field has no catalog. Callers
// degrade to GenericRoadmap instead of failing the request.
var ErrUnsupportedField = errors.New("unsupported field")

// Service builds career roadmaps from the static catalogs
type Service struct {
	tech map[string]roadmapSpec
	mba  map[string]roadmapSpec
	log  logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		tech: TechRoadmaps(),
		mba:  MBARoadmaps(),
		log:  log,
	}
}

// Build returns the roadmap for the given field and specialization.
// Unknown specializations fall back to the field default (frontend for
// tech, consulting for mba) while keeping the caller's specialization
// label. Marketing specializations under mba get the detailed
// marketing consultant roadmap; that override wins over the catalog.
func (s *Service) Build(field, specialization string) (models.Roadmap, error) {
	switch strings.ToLower(field) {
	case "tech":
		return s.fromCatalog("tech", specialization, s.tech, "frontend"), nil
	case "mba":
		if strings.Contains(strings.ToLower(specialization), "marketing") {
			return MarketingConsultantRoadmap(), nil
		}
		return s.fromCatalog("mba", specialization, s.mba, "consulting"), nil
	default:
		return models.Roadmap{}, fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}
}

// BuildOrFallback is Build with the generic-roadmap degradation applied
func (s *Service) BuildOrFallback(field, specialization string) models.Roadmap {
	roadmap, err := s.Build(field, specialization)
	if err != nil {
		s.log.Warn("no roadmap catalog for field, serving generic roadmap", "field", field)
		return GenericRoadmap(field)
	}
	return roadmap
}

func (s *Service) fromCatalog(field, specialization string, table map[string]roadmapSpec, defaultKey string) models.Roadmap {
	spec, ok := table[strings.ToLower(specialization)]
	if !ok {
		spec = table[defaultKey]
	}

	label := specialization
	if label == "" {
		label = defaultKey
	}

	return models.Roadmap{
		Field:          field,
		Specialization: label,
		TotalDuration:  spec.TotalDuration,
		Steps:          spec.Steps,
		SkillsCovered:  spec.SkillsCovered,
	}
}
