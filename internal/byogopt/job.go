// Package byogopt wraps the BYOG financial engine with three search modes:
// single-variable goal seek, multi-variable grid search against feasibility
// constraints, and a 2-D sensitivity heatmap. All three repeatedly mutate a
// base request payload at a dotted path and re-run the simulation.
package byogopt

import (
	"encoding/json"
	"strings"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/byog"
)

// rawPayload is the full request, represented the flexible way byogopt needs
// to mutate it at arbitrary dotted paths before handing it to byog.Run.
type rawPayload map[string]any

func toRawPayload(req byog.Request) (rawPayload, error) {
	buf, err := json.Marshal(rawRequest{
		Site:       req.Site,
		Asset:      req.Asset,
		Fin:        req.Fin,
		BYOCInputs: req.BYOCInputs,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var raw rawPayload
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, apperr.Internal(err)
	}
	return raw, nil
}

// rawRequest mirrors byog.Request's JSON shape under the field names the
// dotted-path convention expects (asset_parameters, financial_assumptions).
type rawRequest struct {
	Site       byog.SiteContext          `json:"site_context"`
	Asset      byog.AssetParameters      `json:"asset_parameters"`
	Fin        *byog.FinancialAssumptions `json:"financial_assumptions,omitempty"`
	BYOCInputs map[string]any            `json:"byoc_inputs,omitempty"`
}

func (p rawPayload) toRequest() (byog.Request, error) {
	buf, err := json.Marshal(map[string]any(p))
	if err != nil {
		return byog.Request{}, apperr.Internal(err)
	}
	var raw rawRequest
	if err := json.Unmarshal(buf, &raw); err != nil {
		return byog.Request{}, apperr.Internal(err)
	}
	return byog.Request{
		Site:       raw.Site,
		Asset:      raw.Asset,
		Fin:        raw.Fin,
		BYOCInputs: raw.BYOCInputs,
	}, nil
}

func (p rawPayload) clone() rawPayload {
	buf, err := json.Marshal(map[string]any(p))
	if err != nil {
		return rawPayload{}
	}
	var out rawPayload
	if err := json.Unmarshal(buf, &out); err != nil {
		return rawPayload{}
	}
	return out
}

// setNested sets payload[path] = value, creating intermediate maps as
// needed, where path is dot-separated ("asset_parameters.turnkey_capex_usd_per_kw").
func setNested(payload rawPayload, path string, value float64) {
	keys := strings.Split(path, ".")
	current := map[string]any(payload)
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// resolvePath expands a bare decision-variable key into its canonical
// payload path, the way the legacy grid-search job shape allows: an
// already-dotted key passes through; a bare key resolves to
// asset_parameters when that section already defines it, and to
// financial_assumptions otherwise.
func resolvePath(payload rawPayload, key string) string {
	if strings.Contains(key, ".") {
		return key
	}
	if assetMap, ok := payload["asset_parameters"].(map[string]any); ok {
		if _, exists := assetMap[key]; exists {
			return "asset_parameters." + key
		}
	}
	return "financial_assumptions." + key
}

// kpi reads a summary_kpis field from a simulation result by its JSON tag.
func kpi(result byog.Result, metric string) (float64, bool) {
	buf, err := json.Marshal(result.SummaryKPIs)
	if err != nil {
		return 0, false
	}
	var asMap map[string]any
	if err := json.Unmarshal(buf, &asMap); err != nil {
		return 0, false
	}
	v, ok := asMap[metric]
	if !ok || v == nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func evaluate(payload rawPayload) (byog.Result, error) {
	req, err := payload.toRequest()
	if err != nil {
		return byog.Result{}, err
	}
	return byog.Run(req)
}
