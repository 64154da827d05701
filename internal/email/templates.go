package email

import "fmt"

func renderWelcomeText(firstName string) string {
	name := firstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s,\n\nYour alumni network account has been created. "+
			"Complete your profile to show up in alumni search, browse upcoming events "+
			"and check the job board.\n", name)
}

func renderWelcomeHTML(firstName string) string {
	name := firstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Your alumni network account has been created. `+
			`Complete your profile to show up in alumni search, browse upcoming events `+
			`and check the job board.</p>`, name)
}
