package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (c *Client) ListSubmissions(ctx context.Context, q models.SubmissionQuery) (models.Page[models.Submission], error) {
	v := pageValues(q.PageQuery)
	setIf(v, "status", string(q.Status))
	return call[models.Page[models.Submission]](ctx, c, Request{Method: http.MethodGet, Path: "/admin/submissions", Query: v})
}

func (c *Client) GetSubmission(ctx context.Context, submissionNo string) (models.SubmissionDetail, error) {
	return call[models.SubmissionDetail](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/submissions/" + escape(submissionNo),
	})
}

func (c *Client) ApproveSubmission(ctx context.Context, submissionNo string, p models.ApproveSubmissionPayload) error {
	return c.exec(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/submissions/" + escape(submissionNo) + "/approve",
		JSON:   p,
	})
}

func (c *Client) RejectSubmission(ctx context.Context, submissionNo string, p models.RejectSubmissionPayload) error {
	return c.exec(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/submissions/" + escape(submissionNo) + "/reject",
		JSON:   p,
	})
}
