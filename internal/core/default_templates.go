package core

import "github.com/example/cmail/internal/models"

// defaultTemplates is the fixed seed set offered to every account: a plain
// business email, an HTML shell, an attachment notice, and a personalized
// offer. Order matters only for presentation; the set is inserted as-is.
var defaultTemplates = []models.Template{
	{
		Name: "Basic Email Template",
		Content: "Dear [Recipient's Name],\n\n" +
			"I hope this message finds you well. " +
			"[Your main content goes here. This could be an update, a request, or any information you wish to share with the recipient. Keep it concise and to the point.] " +
			"Thank you for your time, and I look forward to your response.\n\n" +
			"Best regards,\n" +
			"[Your Name]\n" +
			"[Your Position]\n" +
			"[Your Contact Information]\n" +
			"[Your Company/Organization Name]",
		Subject: "[Your Subject Here]",
	},
	{
		Name: "HTML Email Template",
		Content: "<!DOCTYPE html>\n" +
			"<html>\n" +
			"<head>\n" +
			"    <title>Your Subject Here</title>\n" +
			"</head>\n" +
			"<body>\n" +
			"    <h2>Your Subject Here</h2>\n" +
			"    <p>Dear [Recipient's Name],</p>\n" +
			"    <p>[Your main content goes here.]</p>\n" +
			"    <p>Best,<br>[Your Name]</p>\n" +
			"</body>\n" +
			"</html>",
		Subject: "HTML Template Subject",
	},
	{
		Name: "Email with Attachment",
		Content: "Dear [Name],\n\n" +
			"I hope this message finds you well. " +
			"Please find the attached file regarding [brief description of the attachment, e.g., \"the project update,\" \"the invoice,\" etc.]. " +
			"If you have any questions or need further information, feel free to reach out.\n\n" +
			"Thank you!\n" +
			"Best regards,\n" +
			"[Your Name]",
		Subject: "Attachment Email Subject",
	},
	{
		Name: "Personalized Email Template",
		Content: "Dear [Name],\n\n" +
			"Thank you for being a valued customer. We appreciate your support and loyalty. " +
			"As a token of our gratitude, we would like to offer you [brief description of the offer or special deal]. " +
			"Please let us know if there's anything else we can assist you with.\n\n" +
			"Best wishes,\n" +
			"[Your Name]\n" +
			"[Your Position]\n" +
			"[Your Company/Organization Name]",
		Subject: "Personalized Email Subject",
	},
}
