package response

import "club-booking/internal/domain/payment"

type ReportGroupResponse struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

func FromReport(r payment.Report) []ReportGroupResponse {
	groups := r.Groups()
	out := make([]ReportGroupResponse, 0, len(groups))
	for _, g := range groups {
		values := g.Items
		if values == nil {
			values = []string{}
		}
		out = append(out, ReportGroupResponse{Title: g.Title, Values: values})
	}
	return out
}
