package console

// The payment flow is a simulation kept for parity with the original
// console: it validates the shape of what the operator types and prints a
// receipt. No money moves and nothing is persisted.

type paymentMethod struct {
	name string
	kind string // "cash", "mobile", "card"
}

var paymentMethods = []paymentMethod{
	{name: "Cash", kind: "cash"},
	{name: "BKash", kind: "mobile"},
	{name: "Rocket", kind: "mobile"},
	{name: "NAGAD", kind: "mobile"},
	{name: "VISA", kind: "card"},
	{name: "Mastercard", kind: "card"},
}

func (c *Console) processPayment(total float64) error {
	c.headerf("\nPayment Options:")
	for i, m := range paymentMethods {
		c.printf("%d. %s\n", i+1, m.name)
	}
	choice, err := c.promptInt(1, len(paymentMethods), "Select payment method: ")
	if err != nil {
		return err
	}

	method := paymentMethods[choice-1]
	switch method.kind {
	case "cash":
		c.successf("Paid %.2f in Cash. Thank you!", total)
		return nil
	case "mobile":
		return c.mobilePayment(method.name, total)
	default:
		return c.cardPayment(method.name, total)
	}
}

func (c *Console) mobilePayment(service string, total float64) error {
	c.printf("\nProcessing payment via %s (%.2f)\n", service, total)

	if err := c.promptDigits("Enter mobile number (11 digits): ", 11, 11, false,
		"Invalid mobile number! Must be 11 digits."); err != nil {
		return err
	}
	if err := c.promptDigits("Enter security code (3 digits): ", 3, 3, true,
		"Invalid security code! Must be 3 digits."); err != nil {
		return err
	}
	if err := c.promptDigits("Enter "+service+" PIN (4-6 digits): ", 4, 6, true,
		"Invalid PIN! Must be 4-6 digits."); err != nil {
		return err
	}

	c.successf("Payment of %.2f via %s successful!", total, service)
	c.successf("------------ Order has been placed ----------")
	return nil
}

func (c *Console) cardPayment(cardType string, total float64) error {
	c.printf("\nProcessing payment via %s (%.2f)\n", cardType, total)

	if err := c.promptDigits("Enter "+cardType+" card number (16 digits): ", 16, 16, false,
		"Invalid card number! Must be 16 digits."); err != nil {
		return err
	}
	if err := c.promptDigits("Enter verification code (3-4 digits): ", 3, 4, true,
		"Invalid verification code! Must be 3-4 digits."); err != nil {
		return err
	}
	if err := c.promptDigits("Enter card PIN (4 digits): ", 4, 4, true,
		"Invalid PIN! Must be 4 digits."); err != nil {
		return err
	}

	c.successf("Payment of %.2f via %s successful!", total, cardType)
	return nil
}

// promptDigits loops until the operator enters an all-digit value of an
// acceptable length. Secret entries go through the secret reader.
func (c *Console) promptDigits(prompt string, minLen, maxLen int, masked bool, onInvalid string) error {
	for {
		var value string
		var err error
		if masked {
			value, err = c.readSecret(prompt)
		} else {
			value, err = c.promptLine(prompt)
		}
		if err != nil {
			return err
		}
		if len(value) >= minLen && len(value) <= maxLen && allDigits(value) {
			return nil
		}
		c.errorf("%s", onInvalid)
	}
}
