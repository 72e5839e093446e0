package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdSubmissions(ctx context.Context, args []string) error {
	opts, err := parseListOptions(args, "status")
	if err != nil {
		return err
	}
	page, err := a.api.ListSubmissions(ctx, models.SubmissionQuery{
		PageQuery: opts.page,
		Status:    models.SubmissionStatus(opts.upper("status")),
	})
	if err != nil {
		return err
	}

	t := newTable(a.out, "SUBMISSION NO", "TASK", "USER", "STATUS", "SUBMITTED")
	for _, s := range page.Records {
		t.row(s.SubmissionNo, orDash(s.TaskTitle), userLabel(s.UserID, s.Username), s.Status, orDash(s.SubmittedAt))
	}
	t.flush()
	pageFooter(a.out, page)
	return nil
}

func userLabel(id int64, name string) string {
	if name == "" {
		return strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s (%d)", name, id)
}

func (a *App) cmdSubmission(ctx context.Context, args []string) error {
	s, err := a.api.GetSubmission(ctx, args[0])
	if err != nil {
		return err
	}
	field(a.out, "Submission no", s.SubmissionNo)
	field(a.out, "Task", s.TaskNo+" "+s.TaskTitle)
	field(a.out, "User", userLabel(s.UserID, s.Username))
	field(a.out, "Status", s.Status)
	field(a.out, "Submitted", s.SubmittedAt)
	field(a.out, "Evidence", s.EvidenceURL)
	field(a.out, "Content", s.Content)
	if s.PointsAwarded != nil {
		field(a.out, "Points", *s.PointsAwarded)
	}
	field(a.out, "Comment", s.Comment)
	field(a.out, "Reviewed", s.ReviewedAt)
	return nil
}

func (a *App) cmdApprove(ctx context.Context, args []string) error {
	var p models.ApproveSubmissionPayload
	if len(args) > 1 {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("points must be a number")
		}
		p.PointsAwarded = &n
	}
	if len(args) > 2 {
		p.Comment = strings.Join(args[2:], " ")
	}
	if err := a.api.ApproveSubmission(ctx, args[0], p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "submission approved")
	return nil
}

func (a *App) cmdReject(ctx context.Context, args []string) error {
	p := models.RejectSubmissionPayload{Comment: strings.Join(args[1:], " ")}
	if err := a.api.RejectSubmission(ctx, args[0], p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "submission rejected")
	return nil
}
