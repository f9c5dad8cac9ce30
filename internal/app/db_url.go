package app

import (
	"net/url"
	"strings"

	"github.com/umair050/cricketApp-sub000/internal/config"
)

// postgresDSN prepares cfg.DBURL for lib/pq. application_name is set to the
// service name so scoring sessions are identifiable in pg_stat_activity, and
// the prepared-binary flag is added when enabled. Values already present in
// the DSN win.
func postgresDSN(cfg config.Config) string {
	params := [][2]string{{"application_name", cfg.ServiceName}}
	if cfg.DBDisablePreparedBinary {
		params = append(params, [2]string{"disable_prepared_binary_result", "yes"})
	}
	return withDSNDefaults(cfg.DBURL, params)
}

func withDSNDefaults(raw string, params [][2]string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return raw
		}
		query := parsed.Query()
		changed := false
		for _, p := range params {
			if p[1] == "" || query.Get(p[0]) != "" {
				continue
			}
			query.Set(p[0], p[1])
			changed = true
		}
		if changed {
			parsed.RawQuery = query.Encode()
		}
		return parsed.String()
	}

	present := dsnKeywords(raw)
	var b strings.Builder
	b.WriteString(raw)
	for _, p := range params {
		if p[1] == "" {
			continue
		}
		if _, ok := present[p[0]]; ok {
			continue
		}
		b.WriteString(" " + p[0] + "='" + strings.ReplaceAll(p[1], "'", `\'`) + "'")
	}
	return b.String()
}

func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	return dsnKeywords(raw)["dbname"]
}

// redactDBURL hides the password so the DSN can be logged.
func redactDBURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return parsed.Redacted()
	}

	fields := strings.Fields(raw)
	for i, token := range fields {
		if strings.HasPrefix(token, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

func isURLDSN(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

// dsnKeywords reads a keyword/value DSN. Quoted values with spaces are not
// supported.
func dsnKeywords(raw string) map[string]string {
	out := make(map[string]string)
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}
