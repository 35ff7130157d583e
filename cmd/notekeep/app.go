package main

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"notekeep/internal/auth"
	"notekeep/internal/collection"
	"notekeep/internal/config"
	"notekeep/internal/gateway"
	"notekeep/internal/notice"
	"notekeep/internal/reconcile"
)

// app wires config, identity, gateway and engine for one CLI invocation.
type app struct {
	cfg    *config.Config
	engine *reconcile.Engine
}

// devIdentity satisfies both auth.Provider and gateway.TokenSource with a
// pre-minted dev-store token, skipping Cognito entirely.
type devIdentity struct {
	sub   string
	token string
}

func (d *devIdentity) Current() *auth.Identity {
	return &auth.Identity{Sub: d.sub}
}

func (d *devIdentity) SignIn(context.Context, string, string) error { return nil }
func (d *devIdentity) SignOut(context.Context) error                { return nil }
func (d *devIdentity) Token() (string, error)                       { return d.token, nil }

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	provider, tokens, err := buildIdentity(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var gw gateway.Gateway
	if cfg.GatewayURL != "" {
		gw = gateway.NewHTTP(cfg.GatewayURL, tokens)
	}

	engine := reconcile.New(collection.NewStore(), gw, provider, notice.NewQueue())
	if err := engine.Load(ctx); err != nil {
		// degraded but usable: the session continues on local state
		log.Warnf("could not load remote collection: %v", err)
	}

	return &app{cfg: cfg, engine: engine}, nil
}

func buildIdentity(ctx context.Context, cfg *config.Config) (auth.Provider, gateway.TokenSource, error) {
	if cfg.DevToken != "" {
		sub := cfg.DevSub
		if sub == "" {
			sub = "dev-user"
		}
		dev := &devIdentity{sub: sub, token: cfg.DevToken}
		return dev, dev, nil
	}

	if cfg.CognitoRegion != "" && cfg.CognitoClientID != "" {
		if err := auth.InitJWKS(cfg.CognitoRegion, cfg.CognitoPoolID); err != nil {
			return nil, nil, err
		}
		provider, err := auth.NewCognitoProvider(ctx, cfg.CognitoRegion, cfg.CognitoClientID)
		if err != nil {
			return nil, nil, err
		}
		return provider, provider, nil
	}

	return auth.Anonymous{}, nil, nil
}

// flushNotice prints the transient message line, if any operation queued
// one.
func (a *app) flushNotice() {
	if msg, ok := a.engine.Notices().Current(); ok {
		fmt.Println(msg)
		a.engine.Notices().Dismiss()
	}
}
