package main

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/compute/metadata"
	"golang.org/x/oauth2"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/impersonate"
	licensing "google.golang.org/api/licensing/v1"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Fixed scope set: the minimal superset every API family here needs.
var delegationScopes = []string{
	admin.AdminDirectoryUserScope,
	admin.AdminDirectoryGroupMemberScope,
	licensing.AppsLicensingScope,
	sheets.SpreadsheetsReadonlyScope,
}

// delegatedCredentials is a domain-wide-delegated identity: the runtime
// service account self-impersonates with the configured super-admin as
// subject, so API calls act as that admin. No key file is involved, the
// token is minted through the IAM credentials signJwt flow from ambient
// application default credentials.
type delegatedCredentials struct {
	ts  oauth2.TokenSource
	env *Env
}

func newDelegatedCredentials(ctx context.Context, env *Env) (*delegatedCredentials, error) {
	saEmail := env.ServiceAccountEmail
	if saEmail == "" {
		if !metadata.OnGCE() {
			return nil, errors.New("SERVICE_ACCOUNT_EMAIL not set and no metadata server available")
		}
		email, err := metadata.EmailWithContext(ctx, "default")
		if err != nil {
			return nil, fmt.Errorf("could not resolve runtime service account: %v", err)
		}
		saEmail = email
	}

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: saEmail,
		Scopes:          delegationScopes,
		Subject:         env.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("could not impersonate %s as %s: %v", saEmail, env.Subject, err)
	}

	return &delegatedCredentials{ts: ts, env: env}, nil
}

func (dc *delegatedCredentials) directory(ctx context.Context) (directoryAPI, error) {
	svc, err := admin.NewService(ctx, option.WithTokenSource(dc.ts))
	if err != nil {
		return nil, err
	}
	return &directoryClient{svc: svc}, nil
}

func (dc *delegatedCredentials) licensing(ctx context.Context) (licensingAPI, error) {
	svc, err := licensing.NewService(ctx, option.WithTokenSource(dc.ts))
	if err != nil {
		return nil, err
	}
	return &licensingClient{svc: svc}, nil
}

func (dc *delegatedCredentials) sheets(ctx context.Context) (leaverSource, error) {
	svc, err := sheets.NewService(ctx, option.WithTokenSource(dc.ts))
	if err != nil {
		return nil, err
	}
	return &sheetClient{svc: svc, spreadsheetID: dc.env.SpreadsheetID, readRange: dc.env.SpreadsheetRange}, nil
}
