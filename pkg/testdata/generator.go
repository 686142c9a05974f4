package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/squadscore/ent"
	"github.com/jordanlanch/squadscore/ent/user"
)

// GeneratorConfig configures sample data generation
type GeneratorConfig struct {
	Organizations  int
	TeamsPerOrg    int
	ReviewsPerTeam int
	Sports         []string
}

// DefaultConfig returns a small but representative data set
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Organizations:  10,
		TeamsPerOrg:    4,
		ReviewsPerTeam: 6,
		Sports:         []string{"soccer", "baseball", "basketball", "volleyball", "hockey"},
	}
}

// Club name parts per sport
var clubNameParts = map[string]struct {
	Prefixes []string
	Suffixes []string
}{
	"soccer": {
		Prefixes: []string{"United", "Real", "Inter", "Athletic", "Sporting", "Rapid", "Dynamo", "Rovers", "Strikers", "Galaxy"},
		Suffixes: []string{"FC", "SC", "Soccer Club", "Futbol Academy", "Soccer Academy"},
	},
	"baseball": {
		Prefixes: []string{"Diamond", "Thunder", "Lightning", "Wildcats", "Mustangs", "Raptors", "Crushers", "Bombers", "Aces", "Knights"},
		Suffixes: []string{"Baseball Club", "Baseball Academy", "Travel Ball", "Select Baseball"},
	},
	"basketball": {
		Prefixes: []string{"Elite", "Prime", "Next Level", "Skyline", "Fastbreak", "Showtime", "Crossover", "Swish", "Hoops", "Court Kings"},
		Suffixes: []string{"Basketball Club", "Hoops Academy", "AAU Basketball", "Basketball"},
	},
	"volleyball": {
		Prefixes: []string{"Spike", "Ace", "Summit", "Velocity", "Impact", "Surge", "Apex", "Rally", "Power", "Coastal"},
		Suffixes: []string{"Volleyball Club", "VBC", "Volleyball Academy", "Juniors Volleyball"},
	},
	"hockey": {
		Prefixes: []string{"Ice", "Polar", "Blizzard", "Avalanche", "Glacier", "Arctic", "Frost", "Storm", "Steel", "Northern"},
		Suffixes: []string{"Hockey Club", "Hockey Association", "Youth Hockey", "Ice Hockey"},
	},
}

var ageLevels = []string{"U8", "U10", "U12", "U14", "U16", "U18"}

var divisions = []string{"recreational", "select", "premier"}

var seasonTerms = []string{"spring", "summer", "fall", "winter"}

var reviewTitles = []string{
	"Great development focus",
	"Coaching could be better",
	"Wonderful first season",
	"Mixed experience",
	"Highly recommend this club",
	"Communication needs work",
	"Strong culture, fair playing time",
	"Worth the commute",
}

// GenerateClubName creates a sport-specific club name
func GenerateClubName(sport string) string {
	parts, ok := clubNameParts[sport]
	if !ok {
		return fmt.Sprintf("%s %s", gofakeit.City(), "Athletics")
	}

	prefix := parts.Prefixes[rand.Intn(len(parts.Prefixes))]
	suffix := parts.Suffixes[rand.Intn(len(parts.Suffixes))]

	return fmt.Sprintf("%s %s %s", gofakeit.City(), prefix, suffix)
}

// Seed populates the database with realistic sample organizations,
// teams, parent accounts, reviews and ratings. Intended for local
// development only.
func Seed(ctx context.Context, client *ent.Client, cfg GeneratorConfig) error {
	for o := 0; o < cfg.Organizations; o++ {
		sport := cfg.Sports[rand.Intn(len(cfg.Sports))]
		state := gofakeit.StateAbr()

		org, err := client.Organization.Create().
			SetName(GenerateClubName(sport)).
			SetDescription(gofakeit.Sentence(12)).
			SetWebsite(gofakeit.URL()).
			SetCity(gofakeit.City()).
			SetState(state).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed organization: %w", err)
		}

		teams := make([]*ent.TeamCreate, 0, cfg.TeamsPerOrg)
		for t := 0; t < cfg.TeamsPerOrg; t++ {
			teams = append(teams, client.Team.Create().
				SetName(fmt.Sprintf("%s %s", org.Name, ageLevels[rand.Intn(len(ageLevels))])).
				SetOrganizationID(org.ID).
				SetDivision(divisions[rand.Intn(len(divisions))]).
				SetAgeLevel(ageLevels[rand.Intn(len(ageLevels))]).
				SetCity(org.City).
				SetState(state).
				SetStatus("approved"))
		}

		created, err := client.Team.CreateBulk(teams...).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed teams: %w", err)
		}

		for _, team := range created {
			if err := seedTeamReviews(ctx, client, team.ID, cfg.ReviewsPerTeam); err != nil {
				return err
			}
		}
	}

	return nil
}

func seedTeamReviews(ctx context.Context, client *ent.Client, teamID, count int) error {
	for i := 0; i < count; i++ {
		email := gofakeit.Email()
		parent, err := client.User.Create().
			SetEmail(email).
			SetName(gofakeit.Name()).
			SetPasswordHash("seeded-account").
			SetRole(user.RoleParent).
			SetIsVerified(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed parent account: %w", err)
		}

		// One review per reviewer, team and season; vary the season to
		// keep the unique index happy.
		term := seasonTerms[i%len(seasonTerms)]
		year := time.Now().Year() - i/len(seasonTerms)

		review, err := client.Review.Create().
			SetUserID(parent.ID).
			SetTeamID(teamID).
			SetTitle(reviewTitles[rand.Intn(len(reviewTitles))]).
			SetBody(gofakeit.Paragraph(1, 3, 12, " ")).
			SetSeasonTerm(term).
			SetSeasonYear(year).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed review: %w", err)
		}

		coaching := 1 + rand.Intn(5)
		development := 1 + rand.Intn(5)
		transparency := 1 + rand.Intn(5)
		culture := 1 + rand.Intn(5)
		safety := 1 + rand.Intn(5)

		if _, err := client.Rating.Create().
			SetReviewID(review.ID).
			SetCoaching(coaching).
			SetDevelopment(development).
			SetTransparency(transparency).
			SetCulture(culture).
			SetSafety(safety).
			SetOverall(float64(coaching+development+transparency+culture+safety) / 5.0).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to seed rating: %w", err)
		}
	}

	return nil
}
