package guidance

import (
	"context"
	"time"

	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
	"github.com/rishi-nd08/career-guidance/pkg/metrics"
	"github.com/rishi-nd08/career-guidance/pkg/models"
	"github.com/rishi-nd08/career-guidance/pkg/roadmaps"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
)

const (
	// caps when the query names no companies or roles
	defaultCompanyLimit = 5
	defaultRoleLimit    = 3

	// gatherTimeout bounds each data-gathering step so one slow
	// dependency cannot stall the whole response
	gatherTimeout = 10 * time.Second
)

// Service assembles guidance responses from the roadmap, market data,
// and skills services. Every data-gathering step is best-effort: a
// failed step leaves its section empty rather than failing the query.
type Service struct {
	store    *database.Client
	roadmaps *roadmaps.Service
	market   *marketdata.Service
	skills   *skills.Service
	metrics  *metrics.Metrics
	log      logger.Logger
	now      func() time.Time
}

// NewService creates the guidance orchestrator. m may be nil
func NewService(
	store *database.Client,
	roadmapSvc *roadmaps.Service,
	marketSvc *marketdata.Service,
	skillsSvc *skills.Service,
	m *metrics.Metrics,
	log logger.Logger,
) *Service {
	return &Service{
		store:    store,
		roadmaps: roadmapSvc,
		market:   marketSvc,
		skills:   skillsSvc,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Handle processes one career guidance query
func (s *Service) Handle(ctx context.Context, query models.CareerQuery) (*models.GuidanceResponse, error) {
	s.log.Info("processing career query",
		"field", query.Field, "specialization", query.Specialization,
		"experience_level", query.ExperienceLevel)

	if err := s.store.SaveQuery(ctx, query); err != nil {
		// the audit trail is not worth failing the request over
		s.log.Error("failed to persist career query", "error", err)
	}

	roadmap := s.roadmaps.BuildOrFallback(string(query.Field), query.Specialization)
	marketData := s.gatherMarketData(ctx, query)
	trends := s.gatherTrends(ctx)
	layoffs := s.gatherLayoffs(ctx)
	skillRequirements := s.gatherSkillRequirements(query)
	recommendations := Recommendations(query, marketData, trends)

	if s.metrics != nil {
		s.metrics.RecordGuidanceQuery(string(query.Field), string(query.ExperienceLevel))
	}

	return &models.GuidanceResponse{
		Query:             query,
		Roadmap:           &roadmap,
		MarketData:        marketData,
		MarketTrends:      trends,
		LayoffStatistics:  layoffs,
		SkillRequirements: skillRequirements,
		Recommendations:   recommendations,
		GeneratedAt:       s.now(),
	}, nil
}

// Insights returns the field-level market summary
func (s *Service) Insights(ctx context.Context, field string) models.CareerInsights {
	return models.CareerInsights{
		Field:            field,
		MarketTrends:     s.gatherTrends(ctx),
		LayoffStatistics: s.gatherLayoffs(ctx),
		PopularCompanies: PopularCompanies(field),
		CommonRoles:      CommonRoles(field),
	}
}

func (s *Service) gatherMarketData(ctx context.Context, query models.CareerQuery) []models.CompanySnapshot {
	ctx, cancel := context.WithTimeout(ctx, gatherTimeout)
	defer cancel()

	companies := query.TargetCompanies
	if len(companies) == 0 {
		companies = PopularCompanies(string(query.Field))
		if len(companies) > defaultCompanyLimit {
			companies = companies[:defaultCompanyLimit]
		}
	}

	marketData := make([]models.CompanySnapshot, 0, len(companies))
	for _, company := range companies {
		snapshot, err := s.market.GetCompany(ctx, company)
		if err != nil {
			s.log.Warn("no market data for company", "company", company, "error", err)
			continue
		}
		marketData = append(marketData, *snapshot)
	}
	return marketData
}

func (s *Service) gatherTrends(ctx context.Context) []models.MarketTrend {
	ctx, cancel := context.WithTimeout(ctx, gatherTimeout)
	defer cancel()

	trends, err := s.market.GetMarketTrends(ctx)
	if err != nil {
		s.log.Error("failed to load market trends", "error", err)
		return []models.MarketTrend{}
	}
	return trends
}

func (s *Service) gatherLayoffs(ctx context.Context) []models.LayoffRecord {
	ctx, cancel := context.WithTimeout(ctx, gatherTimeout)
	defer cancel()

	layoffs, err := s.market.GetLayoffStatistics(ctx)
	if err != nil {
		s.log.Error("failed to load layoff statistics", "error", err)
		return []models.LayoffRecord{}
	}
	return layoffs
}

func (s *Service) gatherSkillRequirements(query models.CareerQuery) []models.SkillRequirement {
	roles := query.TargetRoles
	if len(roles) == 0 {
		roles = CommonRoles(string(query.Field))
		if len(roles) > defaultRoleLimit {
			roles = roles[:defaultRoleLimit]
		}
	}

	requirements := make([]models.SkillRequirement, 0, len(roles))
	for _, role := range roles {
		requirements = append(requirements, s.skills.Resolve(role))
	}
	return requirements
}

// PopularCompanies lists well-known employers for a field
func PopularCompanies(field string) []string {
	switch field {
	case "tech":
		return []string{
			"Google", "Microsoft", "Amazon", "Apple", "Meta",
			"Netflix", "Uber", "Airbnb", "Spotify", "Tesla",
		}
	case "mba":
		return []string{
			"McKinsey & Company", "Bain & Company", "Boston Consulting Group",
			"ZS Associates", "Nielsen", "Prophet", "Kantar",
			"Goldman Sachs", "JP Morgan", "Morgan Stanley", "Blackstone",
			"Amazon", "Google", "Microsoft",
		}
	default:
		return []string{"Google", "Microsoft", "Amazon"}
	}
}

// CommonRoles lists typical roles for a field
func CommonRoles(field string) []string {
	switch field {
	case "tech":
		return []string{
			"software_engineer", "data_scientist", "product_manager",
			"devops_engineer", "frontend_developer", "backend_developer",
		}
	case "mba":
		return []string{
			"consultant", "investment_banker", "product_manager",
			"marketing_manager", "operations_manager", "strategy_analyst",
		}
	default:
		return []string{"software_engineer", "consultant"}
	}
}
