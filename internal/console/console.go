package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"atm-simulator/internal/errors"
	"atm-simulator/internal/service"
)

// Console runs the menu loop against an injected reader and writer so tests
// can script a whole session.
type Console struct {
	service *service.Service
	in      *bufio.Scanner
	out     io.Writer
}

func New(svc *service.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: svc,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the main menu until the user exits or input reaches EOF.
// Validation failures are printed and the loop re-prompts; none are fatal.
func (c *Console) Run() error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Main Menu")
		fmt.Fprintln(c.out, "1. Login")
		fmt.Fprintln(c.out, "2. Create New Account")
		fmt.Fprintln(c.out, "3. Exit")

		choice, ok := c.prompt("Choose (1-3): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.login()
		case "2":
			c.createAccount()
		case "3":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *Console) login() {
	number, ok := c.prompt("Enter Account Number: ")
	if !ok {
		return
	}
	pin, ok := c.prompt("Enter PIN: ")
	if !ok {
		return
	}

	session, err := c.service.Login(number, pin)
	if err != nil {
		fmt.Fprintln(c.out, errorMessage(err))
		return
	}

	fmt.Fprintln(c.out, "Login successful.")
	c.runSession(session)
}

func (c *Console) createAccount() {
	number, ok := c.prompt("Enter NEW Account Number: ")
	if !ok {
		return
	}
	pin, ok := c.prompt("Set a 4-digit PIN: ")
	if !ok {
		return
	}
	deposit, ok := c.promptAmount("Initial deposit (blank for 0): ")
	if !ok {
		return
	}

	account, err := c.service.CreateAccount(number, pin, deposit)
	if err != nil {
		fmt.Fprintln(c.out, errorMessage(err))
		return
	}

	fmt.Fprintf(c.out, "Account created. Initial balance: %s\n", account.Balance().StringFixed(2))
}

func (c *Console) runSession(session *service.Session) {
	defer session.Logout()

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Balance Inquiry")
		fmt.Fprintln(c.out, "2. Cash Withdrawal")
		fmt.Fprintln(c.out, "3. Cash Deposit")
		fmt.Fprintln(c.out, "4. Transaction History (session)")
		fmt.Fprintln(c.out, "5. Change PIN")
		fmt.Fprintln(c.out, "6. Logout")

		choice, ok := c.prompt("Enter choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			balance, err := session.Balance()
			if err != nil {
				fmt.Fprintln(c.out, errorMessage(err))
				continue
			}
			fmt.Fprintf(c.out, "Balance: %s\n", balance.StringFixed(2))
		case "2":
			amount, ok := c.promptAmount("Enter withdrawal amount: ")
			if !ok {
				continue
			}
			if _, err := session.Withdraw(amount); err != nil {
				fmt.Fprintln(c.out, errorMessage(err))
				continue
			}
			fmt.Fprintln(c.out, "Withdrawal successful.")
		case "3":
			amount, ok := c.promptAmount("Enter deposit amount: ")
			if !ok {
				continue
			}
			if _, err := session.Deposit(amount); err != nil {
				fmt.Fprintln(c.out, errorMessage(err))
				continue
			}
			fmt.Fprintln(c.out, "Deposit successful.")
		case "4":
			c.printHistory(session)
		case "5":
			oldPIN, ok := c.prompt("Enter current PIN: ")
			if !ok {
				continue
			}
			newPIN, ok := c.prompt("Enter new PIN (min 4 digits): ")
			if !ok {
				continue
			}
			if err := session.ChangePIN(oldPIN, newPIN); err != nil {
				fmt.Fprintln(c.out, errorMessage(err))
				continue
			}
			fmt.Fprintln(c.out, "PIN changed successfully.")
		case "6":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) printHistory(session *service.Session) {
	entries, err := session.History()
	if err != nil {
		fmt.Fprintln(c.out, errorMessage(err))
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No transactions this session.")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(c.out, "[%s] %-8s | Amount: %s | Balance: %s\n",
			entry.At.Format("2006-01-02 15:04:05"),
			entry.Type,
			entry.Amount.StringFixed(2),
			entry.BalanceAfter.StringFixed(2),
		)
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptAmount reads a decimal amount. A blank line means zero; malformed
// input prints a message and reports failure so the caller re-prompts.
func (c *Console) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	if raw == "" {
		return decimal.Zero, true
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount.")
		return decimal.Zero, false
	}
	return amount, true
}

// errorMessage maps application errors to the text shown on the console.
func errorMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		switch appErr.Code {
		case errors.AuthenticationFailed:
			return "Invalid account number or PIN."
		case errors.DuplicateAccount:
			return "Account number exists."
		case errors.InvalidAmount:
			return "Amount must be greater than zero."
		case errors.InsufficientFunds:
			return "Insufficient balance."
		case errors.InvalidPIN:
			return "PIN must be at least 4 digits."
		case errors.InvalidInput:
			return appErr.Message + "."
		}
	}
	return "Something went wrong. Please try again."
}
