// Package main is the entry point for the MIRA MÓVIL admin CLI. It talks
// to a running server over the JSON API: user management, equipment and
// movement listings, and report generation.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/prn-tf/mira-movil/internal/controller"
	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/report"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var serverURL string

	root := &cobra.Command{
		Use:   "mira-admin",
		Short: "Administer a running MIRA MÓVIL server",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the server")

	client := &apiClient{baseURL: func() string { return serverURL }}

	root.AddCommand(
		newVersionCmd(),
		newStateCmd(client),
		newUserCmd(client),
		newEquipmentCmd(client),
		newMovementCmd(client),
		newReportCmd(client),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("MIRA MÓVIL Admin CLI\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
		},
	}
}

func newStateCmd(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current application state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var state map[string]any
			if err := client.get("/api/state", &state); err != nil {
				return err
			}
			return printJSON(state)
		},
	}
}

func newUserCmd(client *apiClient) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	userCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []*domain.UserAccount
			if err := client.get("/api/users/", &users); err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLOGIN\tNAME\tCEDULA\tROLE\tSTATUS\tCREATED")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
					u.ID, u.LoginName, u.FirstName, u.LastName, u.Cedula, u.Role, u.Status, u.CreatedAt)
			}
			return w.Flush()
		},
	})

	var input controller.RegisterUserInput
	var role string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Role = domain.Role(role)
			var res controller.Result
			if err := client.post("/api/users/", input, &res); err != nil {
				return err
			}
			return printResult(res)
		},
	}
	f := createCmd.Flags()
	f.StringVar(&input.FirstName, "first-name", "", "First name")
	f.StringVar(&input.LastName, "last-name", "", "Last name")
	f.StringVar(&input.Cedula, "cedula", "", "Ecuadorian cédula (10 digits)")
	f.StringVar(&input.Email, "email", "", "Email address")
	f.StringVar(&input.LoginName, "login-name", "", "Login name")
	f.StringVar(&input.Password, "password", "", "Password")
	f.StringVar(&role, "role", string(domain.RoleWarehouseKeeper), "Role: purchasing_lead or warehouse_keeper")
	userCmd.AddCommand(createCmd)

	userCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res controller.Result
			if err := client.delete("/api/users/"+args[0], &res); err != nil {
				return err
			}
			return printResult(res)
		},
	})

	return userCmd
}

func newEquipmentCmd(client *apiClient) *cobra.Command {
	equipmentCmd := &cobra.Command{
		Use:   "equipment",
		Short: "Manage equipment records",
	}

	equipmentCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []*domain.Equipment
			if err := client.get("/api/equipment/", &items); err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tTYPE\tLOCATION\tREGISTERED")
			for _, e := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Code, e.Name, e.Type, e.Location, e.RegisteredAt)
			}
			return w.Flush()
		},
	})

	var input controller.RegisterEquipmentInput
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new piece of equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res controller.Result
			if err := client.post("/api/equipment/", input, &res); err != nil {
				return err
			}
			return printResult(res)
		},
	}
	f := registerCmd.Flags()
	f.StringVar(&input.Code, "code", "", "Equipment code (uppercase letters, digits, hyphens)")
	f.StringVar(&input.Name, "name", "", "Display name")
	f.StringVar(&input.Type, "type", "", "Equipment type")
	f.StringVar(&input.Brand, "brand", "", "Brand")
	f.StringVar(&input.Model, "model", "", "Model")
	f.IntVar(&input.Year, "year", 0, "Year of manufacture")
	f.StringVar(&input.SerialNumber, "serial-number", "", "Serial number")
	f.StringVar(&input.Condition, "condition", "", "Condition")
	f.StringVar(&input.Location, "location", "", "Current location")
	f.StringVar(&input.Description, "description", "", "Description")
	f.Float64Var(&input.PurchaseValue, "purchase-value", 0, "Purchase value")
	equipmentCmd.AddCommand(registerCmd)

	return equipmentCmd
}

func newMovementCmd(client *apiClient) *cobra.Command {
	movementCmd := &cobra.Command{
		Use:   "movement",
		Short: "Inspect movement records",
	}

	movementCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List movement records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []*domain.MovementRecord
			if err := client.get("/api/movements/", &items); err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEQUIPMENT\tKIND\tSITE\tDATE\tACTOR")
			for _, m := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.EquipmentName, m.Kind, m.Site, m.Date, m.Actor)
			}
			return w.Flush()
		},
	})

	return movementCmd
}

func newReportCmd(client *apiClient) *cobra.Command {
	var filters report.Filters
	var out string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a movement report",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res controller.ReportResult
			if err := client.post("/api/reports/", filters, &res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}
			fmt.Printf("%s (%d movement(s) matched)\n", res.Message, res.Count)

			content, err := client.download("/api/reports/" + res.ArtifactID)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = os.Stdout.Write(content)
				return err
			}
			if err := os.WriteFile(out, content, 0o644); err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", out)
			return nil
		},
	}
	f := reportCmd.Flags()
	f.StringVar(&filters.DateFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	f.StringVar(&filters.DateTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	f.StringVar(&filters.Project, "project", "", "Project/site substring filter")
	f.StringVar(&filters.EquipmentType, "type", "", "Equipment type filter (exact match)")
	f.StringVar(&out, "out", "", "Write the report to a file instead of stdout")

	return reportCmd
}

// apiClient is a minimal JSON client for the server API.
type apiClient struct {
	baseURL func() string
}

func (c *apiClient) httpClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *apiClient) get(path string, v any) error {
	resp, err := c.httpClient().Get(c.baseURL() + path)
	if err != nil {
		return err
	}
	return decodeResponse(resp, v)
}

func (c *apiClient) post(path string, body, v any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.httpClient().Post(c.baseURL()+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	return decodeResponse(resp, v)
}

func (c *apiClient) delete(path string, v any) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL()+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	return decodeResponse(resp, v)
}

func (c *apiClient) download(path string) ([]byte, error) {
	resp, err := c.httpClient().Get(c.baseURL() + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeResponse decodes any JSON body regardless of status: failure
// results carry their explanation in the body.
func decodeResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if v == nil {
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	return nil
}

func printResult(res controller.Result) error {
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
