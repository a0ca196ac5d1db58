package authz

import (
	"github.com/casbin/casbin/v2"
)

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Authorizer {
	return &service{enforcer: enforcer}
}

func (s *service) Allow(caller Caller, resource, action string) (bool, error) {
	return s.enforcer.Enforce(caller.Role(), resource, action)
}

func (s *service) CanActOn(caller Caller, res Resource) bool {
	if caller.IsHR {
		return true
	}
	return res.OwnerEmail() != "" && res.OwnerEmail() == caller.Email
}
