package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/models"
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Log and review incident tickets",
}

var ticketAddCmd = &cobra.Command{
	Use:   "add [incident-id]",
	Short: "Log an incident ticket",
	Long: `Log an incident ticket once onboarding is complete.

The incident ID uses the INC0000123 or XXX-123 format. When the SLA was
missed, a reason for the delay is required.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		customer, _ := cmd.Flags().GetString("customer")
		group, _ := cmd.Flags().GetString("group")
		priority, _ := cmd.Flags().GetString("priority")
		application, _ := cmd.Flags().GetString("application")
		status, _ := cmd.Flags().GetString("status")
		reason, _ := cmd.Flags().GetString("reason")

		req := db.CreateTicketRequest{
			AssociateID:     associateID,
			IncidentID:      args[0],
			Customer:        customer,
			AssignedGroup:   group,
			Priority:        priority,
			ApplicationName: application,
			Status:          status,
			ReasonForDelay:  reason,
		}
		if cmd.Flags().Changed("sla-met") {
			slaMet, _ := cmd.Flags().GetBool("sla-met")
			req.SLAMet = &slaMet
		}

		ticket, err := store.CreateTicket(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Logged ticket %s (%s) for %s\n", ticket.IncidentID, ticket.Status, ticket.Customer)
	}),
}

var ticketListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List incident tickets",
	Long:    "List all tickets, or one associate's tickets with --as",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")

		var tickets []models.Ticket
		var err error
		if associateID != "" {
			tickets, err = store.TicketsForAssociate(associateID)
		} else {
			tickets, err = store.Tickets()
		}
		if err != nil {
			fmt.Printf("Error fetching tickets: %v\n", err)
			return
		}
		if len(tickets) == 0 {
			fmt.Println("No tickets found.")
			return
		}

		fmt.Printf("%-12s %-20s %-20s %-10s %-5s %s\n", "INCIDENT", "ASSOCIATE", "CUSTOMER", "STATUS", "SLA", "SUBMITTED")
		fmt.Println(strings.Repeat("-", 88))
		for _, ticket := range tickets {
			sla := "-"
			if ticket.SLAMet != nil {
				if *ticket.SLAMet {
					sla = "met"
				} else {
					sla = "miss"
				}
			}
			fmt.Printf("%-12s %-20s %-20s %-10s %-5s %s\n",
				ticket.IncidentID,
				ticket.Employee.Name,
				ticket.Customer,
				ticket.Status,
				sla,
				ticket.SubmittedAt.Format("02/01/2006 15:04"))
			if ticket.ReasonForDelay != "" {
				fmt.Printf("             delay: %s\n", ticket.ReasonForDelay)
			}
		}
	}),
}

func init() {
	ticketAddCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
	ticketAddCmd.Flags().StringP("customer", "c", "", "Customer name")
	ticketAddCmd.Flags().StringP("group", "g", "", "Assigned group")
	ticketAddCmd.Flags().StringP("priority", "p", "", "Ticket priority")
	ticketAddCmd.Flags().StringP("application", "", "", "Application name")
	ticketAddCmd.Flags().StringP("status", "s", models.TicketResolved, "Ticket status: Resolved or Canceled")
	ticketAddCmd.Flags().BoolP("sla-met", "", false, "Whether the SLA was met")
	ticketAddCmd.Flags().StringP("reason", "r", "", "Reason for delay when the SLA was missed")

	ticketListCmd.Flags().StringP("as", "a", "", "Show only this associate's tickets")

	ticketCmd.AddCommand(ticketAddCmd)
	ticketCmd.AddCommand(ticketListCmd)
}
