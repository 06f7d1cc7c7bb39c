package emailsvc

import (
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/tests"
)

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	conf := testutil.NewConfig()
	logger := testutil.NewLogger()
	core.ParseEmailTemplates(logger, conf)
	ResetSentMessages()

	svc := NewConsoleServiceMock(conf, logger)

	to := []mail.Address{{Name: "Anjali Sharma", Address: "anjali@psgitech.ac.in"}}
	svc.SendMessages(
		&core.EmailMessage{
			To:           to,
			Subject:      "Password Reset",
			TemplateName: "password_reset_otp",
			TemplateData: map[string]interface{}{"Name": "Anjali Sharma", "Code": "482913", "ValidFor": "15 minutes"},
		},
		&core.EmailMessage{To: to, Subject: "Plain", BodyStr: "hello"},
		&core.EmailMessage{Subject: "No recipients", BodyStr: "dropped"},
	)

	msgs := SentMessages()
	require.Len(t, msgs, 2)

	otp := msgs[0]
	assert.True(t, strings.Contains(otp.TextContent, "Your password reset code is 482913."), otp.TextContent)
	assert.True(t, strings.Contains(otp.TextContent, "15 minutes"))
	assert.True(t, strings.Contains(otp.HTMLContent, "<strong"), otp.HTMLContent)
	assert.True(t, strings.Contains(otp.HTMLContent, "482913"))

	assert.Equal(t, "hello", msgs[1].TextContent)
	assert.Empty(t, msgs[1].HTMLContent)

	ResetSentMessages()
	assert.Empty(t, SentMessages())
}

func TestSendgridService_prepare(t *testing.T) {
	conf := testutil.NewConfig()
	conf.SendgridApiKey = "SG.test"
	svc := NewSendgridService(conf, testutil.NewLogger())

	m := svc.prepare(core.EmailMessage{
		To:          []mail.Address{{Name: "Vikram Patel", Address: "vikram@psgitech.ac.in"}},
		Cc:          []mail.Address{{Address: "hod@psgitech.ac.in"}},
		Subject:     "Password Reset",
		TextContent: "code 123456",
	})

	require.Len(t, m.Personalizations, 1)
	p := m.Personalizations[0]
	assert.Equal(t, "["+conf.AppName+"] Password Reset", p.Subject)
	require.Len(t, p.To, 1)
	assert.Equal(t, "vikram@psgitech.ac.in", p.To[0].Address)
	require.Len(t, p.CC, 1)
	require.Len(t, m.Content, 1)
	assert.Equal(t, "text/plain", m.Content[0].Type)
}
