// Package semrush implements the report binding for the SEMrush API: a
// static catalog of report definitions, local argument validation,
// ordered parameter assembly and response normalization.
package semrush

// FieldKind selects how an argument is validated and serialized.
type FieldKind int

const (
	// KindString passes the argument through as a string.
	KindString FieldKind = iota
	// KindInt accepts an integer argument and serializes it base-10.
	KindInt
	// KindFlag accepts a boolean argument and serializes the constant
	// Const when true; a false flag is omitted entirely.
	KindFlag
	// KindStrings accepts a string list and serializes it by repeating
	// the bracketed wire key once per element.
	KindStrings
)

// Field describes one argument of a report definition.
type Field struct {
	Name      string    // argument name exposed to callers
	Key       string    // wire key, Name when empty
	Kind      FieldKind //
	Const     string    // serialized value for KindFlag fields
	MaxItems  int       // KindStrings: maximum accepted length, 0 means unbounded
	SameLenAs string    // KindStrings: sibling list that must match in length
	Doc       string    // one-line description surfaced in tool schemas
}

// WireKey returns the query-string key for the field.
func (f Field) WireKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// Endpoint identifies which report API endpoint a definition targets.
// Selection is static per definition, never derived from arguments.
type Endpoint int

const (
	// EndpointAnalytics is the classic analytics endpoint at the host root.
	EndpointAnalytics Endpoint = iota
	// EndpointBacklinks is the backlinks endpoint under /analytics/v1/.
	EndpointBacklinks
)

// Path returns the URL path of the endpoint.
func (e Endpoint) Path() string {
	if e == EndpointBacklinks {
		return "/analytics/v1/"
	}
	return "/"
}

// String returns a short label for logs and metrics.
func (e Endpoint) String() string {
	if e == EndpointBacklinks {
		return "backlinks"
	}
	return "analytics"
}

// Definition describes one report: its endpoint and argument table.
// Name doubles as the wire type discriminator sent to the API.
type Definition struct {
	Name     string
	Endpoint Endpoint
	Database bool // carries a database parameter, defaulting to "us"
	Required []Field
	Optional []Field
	Doc      string
}

// fieldDocs holds the shared argument descriptions surfaced in tool
// schemas. Keyed by argument name; every table field has an entry.
var fieldDocs = map[string]string{
	"domain":                 "Domain to investigate, without protocol (example.com).",
	"domains":                "Pipe-joined domain comparison expression, e.g. example1.com|or|example2.com.",
	"phrase":                 "Keyword or phrase to investigate.",
	"phrases":                "Keywords to look up in one batch, one phrase per element.",
	"url":                    "URL of the page to investigate, including protocol.",
	"target":                 "Root domain, subdomain or URL to analyze.",
	"target_type":            "Scope of the target: root_domain, domain or url.",
	"targets":                "Targets to compare, one root domain, subdomain or URL per element.",
	"target_types":           "Scope of each element of targets, in the same order.",
	"display_limit":          "Maximum number of rows to return.",
	"display_offset":         "Number of rows to skip before returning results.",
	"display_sort":           "Sort order, e.g. tr_desc or po_asc.",
	"display_date":           "Report snapshot date in YYYYMM15 format.",
	"display_filter":         "Column filter expression: <sign>|<field>|<operation>|<value>.",
	"display_positions":      "Position change filter: new, lost, rise or fall.",
	"display_positions_type": "Position type: organic, all or serp_features.",
	"display_daily":          "Break the history down by day instead of by month.",
	"export_columns":         "Comma-separated list of columns to include.",
	"export_escape":          "Wrap every column value in double quotes.",
}

func strField(name string) Field {
	return Field{Name: name, Doc: fieldDocs[name]}
}

func intField(name string) Field {
	return Field{Name: name, Kind: KindInt, Doc: fieldDocs[name]}
}

func flagField(name, constant string) Field {
	return Field{Name: name, Kind: KindFlag, Const: constant, Doc: fieldDocs[name]}
}

func listField(name string, maxItems int, sameLenAs string) Field {
	return Field{
		Name:      name,
		Key:       name + "[]",
		Kind:      KindStrings,
		MaxItems:  maxItems,
		SameLenAs: sameLenAs,
		Doc:       fieldDocs[name],
	}
}

// definitions is the full report catalog. Order is the MCP tool
// registration order.
var definitions = []Definition{
	// Domain reports.
	{
		Name:     "domain_ad_history",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			flagField("display_daily", "1"),
			strField("export_columns"),
		},
		Doc: "Ad copies, landing pages and paid positions a domain has used over time.",
	},
	{
		Name:     "domain_organic_pages",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Unique pages of a domain ranking in organic search.",
	},
	{
		Name:     "domain_organic_search_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("display_positions"),
			strField("display_positions_type"),
			strField("display_filter"),
			strField("export_columns"),
			flagField("export_escape", "1"),
		},
		Doc: "Keywords bringing organic traffic to a domain.",
	},
	{
		Name:     "domain_organic_subdomains",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("export_columns"),
		},
		Doc: "Subdomains of a domain ranking in organic search.",
	},
	{
		Name:     "domain_paid_search_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("display_positions"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Keywords a domain bids on in paid search.",
	},
	{
		Name:     "domain_pla_search_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Keywords triggering a domain's product listing ads.",
	},
	{
		Name:     "domain_vs_domain",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domains")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("export_columns"),
		},
		Doc: "Keyword overlap between up to five competing domains.",
	},
	{
		Name:     "ads_copies",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Unique ad copies displayed for a domain's paid keywords.",
	},
	{
		Name:     "competitors_organic_search",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("domain")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Domains competing with the queried domain in organic search.",
	},
	{
		Name:     "keyword_ads_history",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("export_columns"),
		},
		Doc: "Domains that bid on a keyword in the last 12 months.",
	},
	{
		Name:     "url_organic_search_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("url")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_date"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Keywords a URL ranks for in organic search.",
	},
	{
		Name:     "url_paid_search_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("url")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Keywords a URL ranks for in paid search.",
	},

	// Keyword reports.
	{
		Name:     "keyword_overview_all_databases",
		Endpoint: EndpointAnalytics,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Summary metrics for a keyword across all regional databases.",
	},
	{
		Name:     "keyword_overview_one_database",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Summary metrics for a keyword in one regional database.",
	},
	{
		Name:     "batch_keyword_overview",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{listField("phrases", 100, "")},
		Optional: []Field{
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Summary metrics for up to 100 keywords in one request.",
	},
	{
		Name:     "broad_match_keyword",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Broad matches and alternate search queries for a keyword.",
	},
	{
		Name:     "related_keywords",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Keywords semantically related to the queried term.",
	},
	{
		Name:     "phrase_questions",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			intField("display_offset"),
			strField("display_sort"),
			strField("display_filter"),
			strField("export_columns"),
		},
		Doc: "Question-form search queries containing the keyword.",
	},
	{
		Name:     "keyword_difficulty",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			strField("export_columns"),
		},
		Doc: "Difficulty estimate for ranking organically on a keyword.",
	},
	{
		Name:     "organic_results",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Domains ranking in the top organic results for a keyword.",
	},
	{
		Name:     "paid_results",
		Endpoint: EndpointAnalytics,
		Database: true,
		Required: []Field{strField("phrase")},
		Optional: []Field{
			intField("display_limit"),
			strField("display_date"),
			strField("export_columns"),
		},
		Doc: "Domains ranking in the paid results for a keyword.",
	},

	// Backlinks reports.
	{
		Name:     "backlinks",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
			strField("display_filter"),
		},
		Doc: "Backlinks pointing to the target.",
	},
	{
		Name:     "backlinks_overview",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
		},
		Doc: "Backlink profile summary: total links, referring domains and IPs.",
	},
	{
		Name:     "backlinks_anchors",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
		},
		Doc: "Anchor texts used in backlinks pointing to the target.",
	},
	{
		Name:     "backlinks_refdomains",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
			strField("display_filter"),
		},
		Doc: "Domains linking to the target.",
	},
	{
		Name:     "backlinks_geo",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
		},
		Doc: "Referring domains grouped by country.",
	},
	{
		Name:     "backlinks_pages",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
			strField("display_filter"),
		},
		Doc: "Target pages attracting the most backlinks.",
	},
	{
		Name:     "backlinks_competitors",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			intField("display_limit"),
			intField("display_offset"),
		},
		Doc: "Domains with a backlink profile similar to the target.",
	},
	{
		Name:     "backlinks_tld",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Optional: []Field{
			strField("export_columns"),
			strField("display_sort"),
			intField("display_limit"),
			intField("display_offset"),
		},
		Doc: "Referring domains grouped by top-level domain.",
	},
	{
		Name:     "backlinks_ascore_profile",
		Endpoint: EndpointBacklinks,
		Required: []Field{strField("target"), strField("target_type")},
		Doc:      "Distribution of referring domains by authority score.",
	},
	{
		Name:     "backlinks_comparison",
		Endpoint: EndpointBacklinks,
		Required: []Field{
			listField("targets", 200, ""),
			listField("target_types", 0, "targets"),
		},
		Optional: []Field{
			strField("export_columns"),
		},
		Doc: "Backlink metrics compared across up to 200 targets.",
	},
}

// definitionIndex maps report names to their definitions.
var definitionIndex = func() map[string]Definition {
	idx := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		idx[def.Name] = def
	}
	return idx
}()

// Definitions returns the full report catalog in registration order.
func Definitions() []Definition {
	return definitions
}

// DefinitionByName looks up a report definition by its wire type.
func DefinitionByName(name string) (Definition, bool) {
	def, ok := definitionIndex[name]
	return def, ok
}
