package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestValidateRejectsEmptyContent(t *testing.T) {
	req := CreateAssignmentRequest{
		ClassroomID: uuid.New(),
		SessionNo:   1,
	}
	req.Normalize()
	assert.Error(t, req.Validate())
}

func TestValidateRejectsWhitespaceOnlyContent(t *testing.T) {
	req := CreateAssignmentRequest{
		ClassroomID: uuid.New(),
		SessionNo:   1,
		Content:     strptr("   "),
	}
	req.Normalize()
	require.Nil(t, req.Content)
	assert.Error(t, req.Validate())
}

func TestValidateRejectsMultipleContentKinds(t *testing.T) {
	req := CreateAssignmentRequest{
		ClassroomID: uuid.New(),
		SessionNo:   1,
		LinkURL:     strptr("https://example.com/jawaban"),
		Content:     strptr("jawaban teks"),
	}
	req.Normalize()
	assert.Error(t, req.Validate())
}

func TestValidateAcceptsExactlyOne(t *testing.T) {
	cases := []struct {
		name string
		req  CreateAssignmentRequest
	}{
		{"image", CreateAssignmentRequest{ClassroomID: uuid.New(), SessionNo: 1, ImageBase64: strptr("data:image/png;base64,AAAA")}},
		{"link", CreateAssignmentRequest{ClassroomID: uuid.New(), SessionNo: 2, LinkURL: strptr("https://example.com/x")}},
		{"text", CreateAssignmentRequest{ClassroomID: uuid.New(), SessionNo: 3, Content: strptr("jawaban")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize()
			assert.NoError(t, tc.req.Validate())
		})
	}
}

func TestValidateRequiresClassAndSession(t *testing.T) {
	req := CreateAssignmentRequest{
		SessionNo: 1,
		Content:   strptr("jawaban"),
	}
	assert.Error(t, req.Validate())

	req = CreateAssignmentRequest{
		ClassroomID: uuid.New(),
		Content:     strptr("jawaban"),
	}
	assert.Error(t, req.Validate())
}
