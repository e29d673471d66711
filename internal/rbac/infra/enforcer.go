package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// roleModel grants role -> (resource, action). Organization scoping is a data
// concern handled by the services, not by the policy.
const roleModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

func NewEnforcer(policies [][]string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if len(policies) > 0 {
		if _, err := enforcer.AddPolicies(policies); err != nil {
			return nil, err
		}
	}
	return enforcer, nil
}
