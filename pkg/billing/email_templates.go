package billing

import "fmt"

// buildCheckoutStartedEmail builds the confirmation sent when a
// checkout session is created.
func buildCheckoutStartedEmail(userName, planName, checkoutURL string) (subject, html, plainText string) {
	subject = fmt.Sprintf("Complete your SquadScore %s upgrade", planName)

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Almost there!</h2>
			<p>Hi %s,</p>
			<p>You started an upgrade to the <strong>%s</strong> plan. Complete your payment to unlock it:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Complete Payment</a></p>
			<p>If you didn't start this upgrade, you can safely ignore this email.</p>
			<p>Thanks,<br>The SquadScore Team</p>
		</body>
		</html>
	`, userName, planName, checkoutURL)

	plainText = fmt.Sprintf(`Hi %s,

You started an upgrade to the %s plan. Complete your payment to unlock it:

%s

If you didn't start this upgrade, you can safely ignore this email.

Thanks,
The SquadScore Team
`, userName, planName, checkoutURL)

	return subject, html, plainText
}

// buildSubscriptionActivatedEmail builds the notice sent when a paid
// plan becomes active.
func buildSubscriptionActivatedEmail(userName, planName, baseURL string) (subject, html, plainText string) {
	subject = "Your SquadScore subscription has been activated"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Activated!</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> subscription is now active. Here's what you get:</p>
			<ul>
				<li>Respond to family reviews on behalf of your club</li>
				<li>Highlight your best reviews</li>
				<li>Priority support</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The SquadScore Team</p>
		</body>
		</html>
	`, userName, planName, baseURL)

	plainText = fmt.Sprintf(`Hi %s,

Your %s subscription is now active. Here's what you get:

- Respond to family reviews on behalf of your club
- Highlight your best reviews
- Priority support

Visit your dashboard: %s/dashboard

Thanks,
The SquadScore Team
`, userName, planName, baseURL)

	return subject, html, plainText
}
