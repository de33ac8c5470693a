package main

import (
	"context"
)

// Deps carries everything a handler needs beyond the request itself.
// Directory, licensing and sheets clients are built per request so each
// invocation authenticates fresh; nothing is cached between requests.
type Deps struct {
	env       *Env
	directory func(ctx context.Context) (directoryAPI, error)
	licensing func(ctx context.Context) (licensingAPI, error)
	leavers   func(ctx context.Context) (leaverSource, error)
	aws       leaverDispatcher
}

func newDeps(env *Env) *Deps {
	return &Deps{
		env: env,
		directory: func(ctx context.Context) (directoryAPI, error) {
			creds, err := newDelegatedCredentials(ctx, env)
			if err != nil {
				return nil, err
			}
			return creds.directory(ctx)
		},
		licensing: func(ctx context.Context) (licensingAPI, error) {
			creds, err := newDelegatedCredentials(ctx, env)
			if err != nil {
				return nil, err
			}
			return creds.licensing(ctx)
		},
		leavers: func(ctx context.Context) (leaverSource, error) {
			creds, err := newDelegatedCredentials(ctx, env)
			if err != nil {
				return nil, err
			}
			return creds.sheets(ctx)
		},
		aws: newAWSDispatcher(env),
	}
}
