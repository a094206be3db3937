package handlers

import (
	"techstore/internal/backend"
	"techstore/internal/catalog"
)

type Deps struct {
	StoreHandler *StoreHandler
	CartHandler  *CartHandler
	AuthHandler  *AuthHandler
	Sessions     *Registry
}

func NewDeps(src *catalog.Source, auth backend.Authenticator) *Deps {
	reg := NewRegistry(auth)
	return &Deps{
		StoreHandler: &StoreHandler{Catalog: src, Sessions: reg},
		CartHandler:  &CartHandler{Catalog: src, Sessions: reg},
		AuthHandler:  &AuthHandler{Sessions: reg},
		Sessions:     reg,
	}
}
