// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/squadscore/ent/auditlog"
	"github.com/jordanlanch/squadscore/ent/checkoutsession"
	"github.com/jordanlanch/squadscore/ent/flag"
	"github.com/jordanlanch/squadscore/ent/organization"
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/rating"
	"github.com/jordanlanch/squadscore/ent/refreshtoken"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/schema"
	"github.com/jordanlanch/squadscore/ent/subscription"
	"github.com/jordanlanch/squadscore/ent/subscriptiontransaction"
	"github.com/jordanlanch/squadscore/ent/team"
	"github.com/jordanlanch/squadscore/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	checkoutsessionFields := schema.CheckoutSession{}.Fields()
	_ = checkoutsessionFields
	// checkoutsessionDescTargetID is the schema descriptor for target_id field.
	checkoutsessionDescTargetID := checkoutsessionFields[2].Descriptor()
	// checkoutsession.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	checkoutsession.TargetIDValidator = checkoutsessionDescTargetID.Validators[0].(func(int) error)
	// checkoutsessionDescAmount is the schema descriptor for amount field.
	checkoutsessionDescAmount := checkoutsessionFields[4].Descriptor()
	// checkoutsession.DefaultAmount holds the default value on creation for the amount field.
	checkoutsession.DefaultAmount = checkoutsessionDescAmount.Default.(int64)
	// checkoutsessionDescCurrency is the schema descriptor for currency field.
	checkoutsessionDescCurrency := checkoutsessionFields[5].Descriptor()
	// checkoutsession.DefaultCurrency holds the default value on creation for the currency field.
	checkoutsession.DefaultCurrency = checkoutsessionDescCurrency.Default.(string)
	// checkoutsessionDescCreatedAt is the schema descriptor for created_at field.
	checkoutsessionDescCreatedAt := checkoutsessionFields[9].Descriptor()
	// checkoutsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkoutsession.DefaultCreatedAt = checkoutsessionDescCreatedAt.Default.(func() time.Time)
	// checkoutsessionDescUpdatedAt is the schema descriptor for updated_at field.
	checkoutsessionDescUpdatedAt := checkoutsessionFields[10].Descriptor()
	// checkoutsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkoutsession.DefaultUpdatedAt = checkoutsessionDescUpdatedAt.Default.(func() time.Time)
	// checkoutsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkoutsession.UpdateDefaultUpdatedAt = checkoutsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// checkoutsessionDescID is the schema descriptor for id field.
	checkoutsessionDescID := checkoutsessionFields[0].Descriptor()
	// checkoutsession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	checkoutsession.IDValidator = checkoutsessionDescID.Validators[0].(func(string) error)
	flagFields := schema.Flag{}.Fields()
	_ = flagFields
	// flagDescReviewID is the schema descriptor for review_id field.
	flagDescReviewID := flagFields[0].Descriptor()
	// flag.ReviewIDValidator is a validator for the "review_id" field. It is called by the builders before save.
	flag.ReviewIDValidator = flagDescReviewID.Validators[0].(func(int) error)
	// flagDescReporterID is the schema descriptor for reporter_id field.
	flagDescReporterID := flagFields[1].Descriptor()
	// flag.ReporterIDValidator is a validator for the "reporter_id" field. It is called by the builders before save.
	flag.ReporterIDValidator = flagDescReporterID.Validators[0].(func(int) error)
	// flagDescReason is the schema descriptor for reason field.
	flagDescReason := flagFields[2].Descriptor()
	// flag.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	flag.ReasonValidator = flagDescReason.Validators[0].(func(string) error)
	// flagDescCreatedAt is the schema descriptor for created_at field.
	flagDescCreatedAt := flagFields[5].Descriptor()
	// flag.DefaultCreatedAt holds the default value on creation for the created_at field.
	flag.DefaultCreatedAt = flagDescCreatedAt.Default.(func() time.Time)
	orgresponseFields := schema.OrgResponse{}.Fields()
	_ = orgresponseFields
	// orgresponseDescReviewID is the schema descriptor for review_id field.
	orgresponseDescReviewID := orgresponseFields[0].Descriptor()
	// orgresponse.ReviewIDValidator is a validator for the "review_id" field. It is called by the builders before save.
	orgresponse.ReviewIDValidator = orgresponseDescReviewID.Validators[0].(func(int) error)
	// orgresponseDescResponderID is the schema descriptor for responder_id field.
	orgresponseDescResponderID := orgresponseFields[1].Descriptor()
	// orgresponse.ResponderIDValidator is a validator for the "responder_id" field. It is called by the builders before save.
	orgresponse.ResponderIDValidator = orgresponseDescResponderID.Validators[0].(func(int) error)
	// orgresponseDescBody is the schema descriptor for body field.
	orgresponseDescBody := orgresponseFields[2].Descriptor()
	// orgresponse.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	orgresponse.BodyValidator = orgresponseDescBody.Validators[0].(func(string) error)
	// orgresponseDescCreatedAt is the schema descriptor for created_at field.
	orgresponseDescCreatedAt := orgresponseFields[3].Descriptor()
	// orgresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	orgresponse.DefaultCreatedAt = orgresponseDescCreatedAt.Default.(func() time.Time)
	// orgresponseDescUpdatedAt is the schema descriptor for updated_at field.
	orgresponseDescUpdatedAt := orgresponseFields[4].Descriptor()
	// orgresponse.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	orgresponse.DefaultUpdatedAt = orgresponseDescUpdatedAt.Default.(func() time.Time)
	// orgresponse.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	orgresponse.UpdateDefaultUpdatedAt = orgresponseDescUpdatedAt.UpdateDefault.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[0].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[6].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[7].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratingFields := schema.Rating{}.Fields()
	_ = ratingFields
	// ratingDescReviewID is the schema descriptor for review_id field.
	ratingDescReviewID := ratingFields[0].Descriptor()
	// rating.ReviewIDValidator is a validator for the "review_id" field. It is called by the builders before save.
	rating.ReviewIDValidator = ratingDescReviewID.Validators[0].(func(int) error)
	// ratingDescCoaching is the schema descriptor for coaching field.
	ratingDescCoaching := ratingFields[1].Descriptor()
	// rating.CoachingValidator is a validator for the "coaching" field. It is called by the builders before save.
	rating.CoachingValidator = ratingDescCoaching.Validators[0].(func(int) error)
	// ratingDescDevelopment is the schema descriptor for development field.
	ratingDescDevelopment := ratingFields[2].Descriptor()
	// rating.DevelopmentValidator is a validator for the "development" field. It is called by the builders before save.
	rating.DevelopmentValidator = ratingDescDevelopment.Validators[0].(func(int) error)
	// ratingDescTransparency is the schema descriptor for transparency field.
	ratingDescTransparency := ratingFields[3].Descriptor()
	// rating.TransparencyValidator is a validator for the "transparency" field. It is called by the builders before save.
	rating.TransparencyValidator = ratingDescTransparency.Validators[0].(func(int) error)
	// ratingDescCulture is the schema descriptor for culture field.
	ratingDescCulture := ratingFields[4].Descriptor()
	// rating.CultureValidator is a validator for the "culture" field. It is called by the builders before save.
	rating.CultureValidator = ratingDescCulture.Validators[0].(func(int) error)
	// ratingDescSafety is the schema descriptor for safety field.
	ratingDescSafety := ratingFields[5].Descriptor()
	// rating.SafetyValidator is a validator for the "safety" field. It is called by the builders before save.
	rating.SafetyValidator = ratingDescSafety.Validators[0].(func(int) error)
	refreshtokenFields := schema.RefreshToken{}.Fields()
	_ = refreshtokenFields
	// refreshtokenDescUserID is the schema descriptor for user_id field.
	refreshtokenDescUserID := refreshtokenFields[0].Descriptor()
	// refreshtoken.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	refreshtoken.UserIDValidator = refreshtokenDescUserID.Validators[0].(func(int) error)
	// refreshtokenDescTokenHash is the schema descriptor for token_hash field.
	refreshtokenDescTokenHash := refreshtokenFields[1].Descriptor()
	// refreshtoken.TokenHashValidator is a validator for the "token_hash" field. It is called by the builders before save.
	refreshtoken.TokenHashValidator = refreshtokenDescTokenHash.Validators[0].(func(string) error)
	// refreshtokenDescRevoked is the schema descriptor for revoked field.
	refreshtokenDescRevoked := refreshtokenFields[2].Descriptor()
	// refreshtoken.DefaultRevoked holds the default value on creation for the revoked field.
	refreshtoken.DefaultRevoked = refreshtokenDescRevoked.Default.(bool)
	// refreshtokenDescCreatedAt is the schema descriptor for created_at field.
	refreshtokenDescCreatedAt := refreshtokenFields[4].Descriptor()
	// refreshtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	refreshtoken.DefaultCreatedAt = refreshtokenDescCreatedAt.Default.(func() time.Time)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescUserID is the schema descriptor for user_id field.
	reviewDescUserID := reviewFields[0].Descriptor()
	// review.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	review.UserIDValidator = reviewDescUserID.Validators[0].(func(int) error)
	// reviewDescTeamID is the schema descriptor for team_id field.
	reviewDescTeamID := reviewFields[1].Descriptor()
	// review.TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	review.TeamIDValidator = reviewDescTeamID.Validators[0].(func(int) error)
	// reviewDescTitle is the schema descriptor for title field.
	reviewDescTitle := reviewFields[2].Descriptor()
	// review.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	review.TitleValidator = reviewDescTitle.Validators[0].(func(string) error)
	// reviewDescBody is the schema descriptor for body field.
	reviewDescBody := reviewFields[3].Descriptor()
	// review.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	review.BodyValidator = reviewDescBody.Validators[0].(func(string) error)
	// reviewDescSeasonTerm is the schema descriptor for season_term field.
	reviewDescSeasonTerm := reviewFields[4].Descriptor()
	// review.SeasonTermValidator is a validator for the "season_term" field. It is called by the builders before save.
	review.SeasonTermValidator = reviewDescSeasonTerm.Validators[0].(func(string) error)
	// reviewDescSeasonYear is the schema descriptor for season_year field.
	reviewDescSeasonYear := reviewFields[5].Descriptor()
	// review.SeasonYearValidator is a validator for the "season_year" field. It is called by the builders before save.
	review.SeasonYearValidator = reviewDescSeasonYear.Validators[0].(func(int) error)
	// reviewDescIsPublic is the schema descriptor for is_public field.
	reviewDescIsPublic := reviewFields[7].Descriptor()
	// review.DefaultIsPublic holds the default value on creation for the is_public field.
	review.DefaultIsPublic = reviewDescIsPublic.Default.(bool)
	// reviewDescIsHighlight is the schema descriptor for is_highlight field.
	reviewDescIsHighlight := reviewFields[8].Descriptor()
	// review.DefaultIsHighlight holds the default value on creation for the is_highlight field.
	review.DefaultIsHighlight = reviewDescIsHighlight.Default.(bool)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[10].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[7].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[8].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptiontransactionFields := schema.SubscriptionTransaction{}.Fields()
	_ = subscriptiontransactionFields
	// subscriptiontransactionDescSubscriptionID is the schema descriptor for subscription_id field.
	subscriptiontransactionDescSubscriptionID := subscriptiontransactionFields[0].Descriptor()
	// subscriptiontransaction.SubscriptionIDValidator is a validator for the "subscription_id" field. It is called by the builders before save.
	subscriptiontransaction.SubscriptionIDValidator = subscriptiontransactionDescSubscriptionID.Validators[0].(func(int) error)
	// subscriptiontransactionDescCurrency is the schema descriptor for currency field.
	subscriptiontransactionDescCurrency := subscriptiontransactionFields[2].Descriptor()
	// subscriptiontransaction.DefaultCurrency holds the default value on creation for the currency field.
	subscriptiontransaction.DefaultCurrency = subscriptiontransactionDescCurrency.Default.(string)
	// subscriptiontransactionDescStatus is the schema descriptor for status field.
	subscriptiontransactionDescStatus := subscriptiontransactionFields[3].Descriptor()
	// subscriptiontransaction.DefaultStatus holds the default value on creation for the status field.
	subscriptiontransaction.DefaultStatus = subscriptiontransactionDescStatus.Default.(string)
	// subscriptiontransactionDescCreatedAt is the schema descriptor for created_at field.
	subscriptiontransactionDescCreatedAt := subscriptiontransactionFields[6].Descriptor()
	// subscriptiontransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscriptiontransaction.DefaultCreatedAt = subscriptiontransactionDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[0].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = teamDescName.Validators[0].(func(string) error)
	// teamDescOrganizationID is the schema descriptor for organization_id field.
	teamDescOrganizationID := teamFields[1].Descriptor()
	// team.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	team.OrganizationIDValidator = teamDescOrganizationID.Validators[0].(func(int) error)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[7].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[8].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescIsVerified is the schema descriptor for is_verified field.
	userDescIsVerified := userFields[4].Descriptor()
	// user.DefaultIsVerified holds the default value on creation for the is_verified field.
	user.DefaultIsVerified = userDescIsVerified.Default.(bool)
	// userDescIsBanned is the schema descriptor for is_banned field.
	userDescIsBanned := userFields[5].Descriptor()
	// user.DefaultIsBanned holds the default value on creation for the is_banned field.
	user.DefaultIsBanned = userDescIsBanned.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[9].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[10].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
