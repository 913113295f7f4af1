package storage

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID     string
	EntryID     string
	PduID       string
	RackID      string
	Chain       string
	Site        string
	DC          string
	Country     string
	MetricType  string
	AlertReason string
	Key         string
	Type        string

	AllowedSites []string

	From time.Time
	To   time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""
	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}
	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.EntryID != "" {
		args["entry_id"] = c.EntryID
	}
	if c.PduID != "" {
		args["pdu_id"] = c.PduID
	}
	if c.RackID != "" {
		args["rack_id"] = c.RackID
	}
	if c.Chain != "" {
		args["chain"] = c.Chain
	}
	if c.Site != "" {
		args["site"] = c.Site
	}
	if c.DC != "" {
		args["dc"] = c.DC
	}
	if c.Country != "" {
		args["country"] = c.Country
	}
	if c.MetricType != "" {
		args["metric_type"] = c.MetricType
	}
	if c.AlertReason != "" {
		args["alert_reason"] = c.AlertReason
	}
	if c.Key != "" {
		args["key"] = c.Key
	}
	if c.Type != "" {
		args["type"] = c.Type
	}
	if len(c.AllowedSites) > 0 {
		args["allowed_sites"] = c.AllowedSites
	}
	if !c.From.IsZero() {
		args["time_from"] = c.From.UTC()
	}
	if !c.To.IsZero() {
		args["time_to"] = c.To.UTC()
	}

	return args
}

// Where builds the filter clause. timeColumn names the column the From/To
// range applies to for the table being queried; pass "" when the table has
// no range-queryable column.
func (c Condition) Where(timeColumn string) string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.EntryID != "" {
		where = append(where, "entry_id = @entry_id")
	}
	if c.PduID != "" {
		where = append(where, "pdu_id = @pdu_id")
	}
	if c.RackID != "" {
		where = append(where, "rack_id = @rack_id")
	}
	if c.Chain != "" {
		where = append(where, "chain = @chain")
	}
	if c.Site != "" {
		where = append(where, "site = @site")
	}
	if c.DC != "" {
		where = append(where, "dc = @dc")
	}
	if c.Country != "" {
		where = append(where, "country = @country")
	}
	if c.MetricType != "" {
		where = append(where, "metric_type = @metric_type")
	}
	if c.AlertReason != "" {
		where = append(where, "alert_reason = @alert_reason")
	}
	if c.Key != "" {
		where = append(where, "key = @key")
	}
	if c.Type != "" {
		where = append(where, "type = @type")
	}
	if len(c.AllowedSites) > 0 {
		where = append(where, "site = ANY(@allowed_sites)")
	}
	if timeColumn != "" && !c.From.IsZero() {
		where = append(where, fmt.Sprintf("%s >= @time_from", timeColumn))
	}
	if timeColumn != "" && !c.To.IsZero() {
		where = append(where, fmt.Sprintf("%s < @time_to", timeColumn))
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithEntryID(entryID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EntryID = entryID
		return c
	}
}

func WithPduID(pduID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PduID = pduID
		return c
	}
}

func WithRackID(rackID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.RackID = rackID
		return c
	}
}

func WithChain(chain string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Chain = chain
		return c
	}
}

func WithSite(site string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Site = site
		return c
	}
}

func WithDC(dc string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DC = dc
		return c
	}
}

func WithCountry(country string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Country = country
		return c
	}
}

func WithMetricType(metricType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MetricType = metricType
		return c
	}
}

func WithAlertReason(reason string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertReason = reason
		return c
	}
}

func WithKey(key string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Key = key
		return c
	}
}

func WithType(t string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Type = t
		return c
	}
}

func WithAllowedSites(sites []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AllowedSites = unique(sites)
		return c
	}
}

func WithTimeRange(from, to time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.From = from
		c.To = to
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "pdu_id":
			c.sortBy = "pdu_id"
		case "rack_id":
			c.sortBy = "rack_id"
		case "site":
			c.sortBy = "site"
		case "started_at":
			c.sortBy = "started_at"
		case "resolved_at":
			c.sortBy = "resolved_at"
		case "last_updated_at":
			c.sortBy = "last_updated_at"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func unique(s []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range s {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}

var re = regexp.MustCompile(`[^a-zA-Z0-9 _\-,;().:]+|[%]`)

func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	var from, to time.Time

	for k, v := range params {
		switch strings.ToLower(k) {
		case "pdu_id":
			conditions = append(conditions, WithPduID(v[0]))
		case "rack_id":
			conditions = append(conditions, WithRackID(v[0]))
		case "chain":
			conditions = append(conditions, WithChain(v[0]))
		case "site":
			conditions = append(conditions, WithSite(re.ReplaceAllString(v[0], "")))
		case "dc":
			conditions = append(conditions, WithDC(re.ReplaceAllString(v[0], "")))
		case "country":
			conditions = append(conditions, WithCountry(re.ReplaceAllString(v[0], "")))
		case "metric":
			fallthrough
		case "metric_type":
			conditions = append(conditions, WithMetricType(v[0]))
		case "type":
			conditions = append(conditions, WithType(v[0]))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		case "from":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				from = t
			}
		case "to":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				to = t
			}
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	if !from.IsZero() || !to.IsZero() {
		conditions = append(conditions, WithTimeRange(from, to))
	}

	return conditions
}
