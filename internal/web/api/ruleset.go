package api

import (
	"net/http"

	"github.com/mjpad/mjledger/internal/ledger"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/protocol"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
)

func MakeRulesetService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/ruleset/", nex.Handler(rulesetList)).Methods("GET")        //内置规则列表
	router.Handle("/v1/ruleset/check", nex.Handler(rulesetCheck)).Methods("POST") //规则校验
	return router
}

func rulesetList() (*protocol.RulesetListResponse, error) {
	presets := ledger.Presets()
	list := make([]protocol.Ruleset, len(presets))
	for i, p := range presets {
		list[i] = p.ToProtocol()
	}
	return &protocol.RulesetListResponse{Data: list}, nil
}

// 只做编辑期校验, 计分时规则永不报错
func rulesetCheck(req *protocol.RulesetCheckRequest) (*protocol.RulesetCheckResponse, error) {
	rules, ok := ledger.FromProtocol(&req.Ruleset)
	if !ok {
		return nil, errutil.ErrInvalidRuleset
	}
	violations := ledger.Validate(rules)
	if violations == nil {
		violations = []string{}
	}
	return &protocol.RulesetCheckResponse{Violations: violations}, nil
}
