// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeString},
		{Name: "target_type", Type: field.TypeString, Nullable: true},
		{Name: "target_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeInt, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_actor_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
		},
	}
	// CheckoutSessionsColumns holds the columns for the "checkout_sessions" table.
	CheckoutSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "target_type", Type: field.TypeEnum, Enums: []string{"organization", "team"}},
		{Name: "target_id", Type: field.TypeInt},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"basic", "pro", "elite"}},
		{Name: "amount", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unpaid", "paid"}, Default: "unpaid"},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CheckoutSessionsTable holds the schema information for the "checkout_sessions" table.
	CheckoutSessionsTable = &schema.Table{
		Name:       "checkout_sessions",
		Columns:    CheckoutSessionsColumns,
		PrimaryKey: []*schema.Column{CheckoutSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkoutsession_target_id",
				Unique:  false,
				Columns: []*schema.Column{CheckoutSessionsColumns[2]},
			},
			{
				Name:    "checkoutsession_status",
				Unique:  false,
				Columns: []*schema.Column{CheckoutSessionsColumns[6]},
			},
			{
				Name:    "checkoutsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckoutSessionsColumns[9]},
			},
		},
	}
	// FlagsColumns holds the columns for the "flags" table.
	FlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reason", Type: field.TypeString},
		{Name: "reporter_ip", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "reviewed", "resolved", "rejected"}, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "review_id", Type: field.TypeInt},
		{Name: "reporter_id", Type: field.TypeInt},
	}
	// FlagsTable holds the schema information for the "flags" table.
	FlagsTable = &schema.Table{
		Name:       "flags",
		Columns:    FlagsColumns,
		PrimaryKey: []*schema.Column{FlagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flags_reviews_flags",
				Columns:    []*schema.Column{FlagsColumns[5]},
				RefColumns: []*schema.Column{ReviewsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "flags_users_flags",
				Columns:    []*schema.Column{FlagsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flag_review_id",
				Unique:  false,
				Columns: []*schema.Column{FlagsColumns[5]},
			},
			{
				Name:    "flag_reporter_id",
				Unique:  false,
				Columns: []*schema.Column{FlagsColumns[6]},
			},
			{
				Name:    "flag_status",
				Unique:  false,
				Columns: []*schema.Column{FlagsColumns[3]},
			},
			{
				Name:    "flag_created_at",
				Unique:  false,
				Columns: []*schema.Column{FlagsColumns[4]},
			},
		},
	}
	// OrgResponsesColumns holds the columns for the "org_responses" table.
	OrgResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "review_id", Type: field.TypeInt, Unique: true},
		{Name: "responder_id", Type: field.TypeInt},
	}
	// OrgResponsesTable holds the schema information for the "org_responses" table.
	OrgResponsesTable = &schema.Table{
		Name:       "org_responses",
		Columns:    OrgResponsesColumns,
		PrimaryKey: []*schema.Column{OrgResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "org_responses_reviews_org_response",
				Columns:    []*schema.Column{OrgResponsesColumns[4]},
				RefColumns: []*schema.Column{ReviewsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "org_responses_users_responses",
				Columns:    []*schema.Column{OrgResponsesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orgresponse_review_id",
				Unique:  true,
				Columns: []*schema.Column{OrgResponsesColumns[4]},
			},
			{
				Name:    "orgresponse_responder_id",
				Unique:  false,
				Columns: []*schema.Column{OrgResponsesColumns[5]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "approved"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_name",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[1]},
			},
			{
				Name:    "organization_status",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[6]},
			},
			{
				Name:    "organization_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[7]},
			},
		},
	}
	// RatingsColumns holds the columns for the "ratings" table.
	RatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "coaching", Type: field.TypeInt},
		{Name: "development", Type: field.TypeInt},
		{Name: "transparency", Type: field.TypeInt},
		{Name: "culture", Type: field.TypeInt},
		{Name: "safety", Type: field.TypeInt},
		{Name: "overall", Type: field.TypeFloat64},
		{Name: "review_id", Type: field.TypeInt, Unique: true},
	}
	// RatingsTable holds the schema information for the "ratings" table.
	RatingsTable = &schema.Table{
		Name:       "ratings",
		Columns:    RatingsColumns,
		PrimaryKey: []*schema.Column{RatingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ratings_reviews_rating",
				Columns:    []*schema.Column{RatingsColumns[7]},
				RefColumns: []*schema.Column{ReviewsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rating_review_id",
				Unique:  true,
				Columns: []*schema.Column{RatingsColumns[7]},
			},
			{
				Name:    "rating_overall",
				Unique:  false,
				Columns: []*schema.Column{RatingsColumns[6]},
			},
		},
	}
	// RefreshTokensColumns holds the columns for the "refresh_tokens" table.
	RefreshTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token_hash", Type: field.TypeString},
		{Name: "revoked", Type: field.TypeBool, Default: false},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// RefreshTokensTable holds the schema information for the "refresh_tokens" table.
	RefreshTokensTable = &schema.Table{
		Name:       "refresh_tokens",
		Columns:    RefreshTokensColumns,
		PrimaryKey: []*schema.Column{RefreshTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refresh_tokens_users_refresh_tokens",
				Columns:    []*schema.Column{RefreshTokensColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "refreshtoken_token_hash",
				Unique:  true,
				Columns: []*schema.Column{RefreshTokensColumns[1]},
			},
			{
				Name:    "refreshtoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[5]},
			},
			{
				Name:    "refreshtoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[3]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "season_term", Type: field.TypeString},
		{Name: "season_year", Type: field.TypeInt},
		{Name: "age_level_at_review", Type: field.TypeString, Nullable: true},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "is_highlight", Type: field.TypeBool, Default: false},
		{Name: "edited_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_teams_reviews",
				Columns:    []*schema.Column{ReviewsColumns[10]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reviews_users_reviews",
				Columns:    []*schema.Column{ReviewsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_user_id_team_id_season_term_season_year",
				Unique:  true,
				Columns: []*schema.Column{ReviewsColumns[11], ReviewsColumns[10], ReviewsColumns[3], ReviewsColumns[4]},
			},
			{
				Name:    "review_team_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[10]},
			},
			{
				Name:    "review_is_public",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[6]},
			},
			{
				Name:    "review_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[9]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"basic", "pro", "elite"}, Default: "basic"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "canceled"}, Default: "active"},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt, Unique: true, Nullable: true},
		{Name: "team_id", Type: field.TypeInt, Unique: true, Nullable: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_organizations_subscription",
				Columns:    []*schema.Column{SubscriptionsColumns[8]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "subscriptions_teams_subscription",
				Columns:    []*schema.Column{SubscriptionsColumns[9]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_organization_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[8]},
			},
			{
				Name:    "subscription_team_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[9]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[2]},
			},
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[4]},
			},
		},
	}
	// SubscriptionTransactionsColumns holds the columns for the "subscription_transactions" table.
	SubscriptionTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "status", Type: field.TypeString, Default: "succeeded"},
		{Name: "stripe_payment_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_invoice_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subscription_id", Type: field.TypeInt},
	}
	// SubscriptionTransactionsTable holds the schema information for the "subscription_transactions" table.
	SubscriptionTransactionsTable = &schema.Table{
		Name:       "subscription_transactions",
		Columns:    SubscriptionTransactionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscription_transactions_subscriptions_transactions",
				Columns:    []*schema.Column{SubscriptionTransactionsColumns[7]},
				RefColumns: []*schema.Column{SubscriptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscriptiontransaction_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionTransactionsColumns[7]},
			},
			{
				Name:    "subscriptiontransaction_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionTransactionsColumns[6]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "division", Type: field.TypeString, Nullable: true},
		{Name: "age_level", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeInt},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teams_organizations_teams",
				Columns:    []*schema.Column{TeamsColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "team_organization_id",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[9]},
			},
			{
				Name:    "team_status",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[6]},
			},
			{
				Name:    "team_created_at",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"anonymous", "parent", "team_admin", "org_admin", "site_admin"}, Default: "parent"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "is_banned", Type: field.TypeBool, Default: false},
		{Name: "email_verification_token", Type: field.TypeString, Nullable: true},
		{Name: "created_ip", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CheckoutSessionsTable,
		FlagsTable,
		OrgResponsesTable,
		OrganizationsTable,
		RatingsTable,
		RefreshTokensTable,
		ReviewsTable,
		SubscriptionsTable,
		SubscriptionTransactionsTable,
		TeamsTable,
		UsersTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	FlagsTable.ForeignKeys[0].RefTable = ReviewsTable
	FlagsTable.ForeignKeys[1].RefTable = UsersTable
	OrgResponsesTable.ForeignKeys[0].RefTable = ReviewsTable
	OrgResponsesTable.ForeignKeys[1].RefTable = UsersTable
	RatingsTable.ForeignKeys[0].RefTable = ReviewsTable
	RefreshTokensTable.ForeignKeys[0].RefTable = UsersTable
	ReviewsTable.ForeignKeys[0].RefTable = TeamsTable
	ReviewsTable.ForeignKeys[1].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = OrganizationsTable
	SubscriptionsTable.ForeignKeys[1].RefTable = TeamsTable
	SubscriptionTransactionsTable.ForeignKeys[0].RefTable = SubscriptionsTable
	TeamsTable.ForeignKeys[0].RefTable = OrganizationsTable
}
