package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TabularColumns names the column titles of an order-based workbook region.
type TabularColumns struct {
	OrderID      string `yaml:"order_id"`
	Counterparty string `yaml:"counterparty"`
	DueDate      string `yaml:"due_date"`
	Amount       string `yaml:"amount"`
}

// ExpenseColumns names the column titles of the general expenses region.
type ExpenseColumns struct {
	DueDate string `yaml:"due_date"`
	Amount  string `yaml:"amount"`
}

// Workbook describes where each region sits in the input file. The values
// are the production workbook contract; tests point them at synthetic
// sheets.
type Workbook struct {
	BalanceSheet        string `yaml:"balance_sheet"`
	BalanceDateRow      int    `yaml:"balance_date_row"`
	BalanceFirstDataRow int    `yaml:"balance_first_data_row"`
	BalanceFirstDateCol int    `yaml:"balance_first_date_col"`

	ReceivablesSheet string         `yaml:"receivables_sheet"`
	Receivables      TabularColumns `yaml:"receivables_columns"`
	PayablesSheet    string         `yaml:"payables_sheet"`
	Payables         TabularColumns `yaml:"payables_columns"`
	ExpensesSheet    string         `yaml:"expenses_sheet"`
	Expenses         ExpenseColumns `yaml:"expenses_columns"`
	ExpensesLabel    string         `yaml:"expenses_label"`

	// HeaderRow is the 0-based row holding the column titles of the three
	// tabular regions; data starts on the next row.
	HeaderRow int `yaml:"header_row"`
}

// Report carries the document header texts.
type Report struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Config defines the full pipeline configuration.
type Config struct {
	InputPath       string   `yaml:"input_path"`
	OutputDir       string   `yaml:"output_dir"`
	SpreadsheetName string   `yaml:"spreadsheet_name"`
	DocumentName    string   `yaml:"document_name"`
	MarkupName      string   `yaml:"markup_name"`
	Workbook        Workbook `yaml:"workbook"`
	Report          Report   `yaml:"report"`
}

// Load builds configuration from defaults, an optional yaml file and env
// vars. The file path comes from the argument or CASHFLOW_CONFIG; yaml
// values override env values.
func Load(path string) (Config, error) {
	cfg := Config{
		InputPath:       getenvDefault("CASHFLOW_INPUT", "CashFlow Financeiro_new.xlsx"),
		OutputDir:       getenvDefault("CASHFLOW_OUTPUT_DIR", "."),
		SpreadsheetName: "relatorio_fluxo_caixa_completo.xlsx",
		DocumentName:    "relatorio_fluxo_caixa.pdf",
		MarkupName:      "relatorio_fluxo_caixa_debug.html",
		Workbook: Workbook{
			BalanceSheet:        "SALDO BANCÁRIO - R$",
			BalanceDateRow:      0,
			BalanceFirstDataRow: 2,
			BalanceFirstDateCol: 2,
			ReceivablesSheet:    "CR - Produto",
			Receivables: TabularColumns{
				OrderID:      "PED",
				Counterparty: "CLIENTE",
				DueDate:      "VENCIMENTO",
				Amount:       "VLR A RECEBER R$",
			},
			PayablesSheet: "CP - Produto",
			Payables: TabularColumns{
				OrderID:      "PED",
				Counterparty: "FORNECEDOR",
				DueDate:      "VENCIMENTO",
				Amount:       "VLR R$",
			},
			ExpensesSheet: "CP - Saídas Gerais",
			Expenses: ExpenseColumns{
				DueDate: "DATA VENC.",
				Amount:  "VALOR A PAGAR R$",
			},
			ExpensesLabel: "SAÍDAS GERAIS",
			HeaderRow:     7,
		},
		Report: Report{
			Title:    "Cashflow Paper Report",
			Subtitle: "day by day",
		},
	}

	if path == "" {
		path = os.Getenv("CASHFLOW_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks that every required field is usable.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("config: input path required")
	}
	if c.OutputDir == "" {
		return errors.New("config: output dir required")
	}
	if c.SpreadsheetName == "" || c.DocumentName == "" || c.MarkupName == "" {
		return errors.New("config: output file names required")
	}
	w := c.Workbook
	if w.BalanceSheet == "" || w.ReceivablesSheet == "" || w.PayablesSheet == "" || w.ExpensesSheet == "" {
		return errors.New("config: workbook sheet names required")
	}
	if w.BalanceDateRow < 0 || w.BalanceFirstDataRow < 0 || w.BalanceFirstDateCol < 0 || w.HeaderRow < 0 {
		return errors.New("config: workbook offsets must not be negative")
	}
	for _, cols := range []TabularColumns{w.Receivables, w.Payables} {
		if cols.OrderID == "" || cols.Counterparty == "" || cols.DueDate == "" || cols.Amount == "" {
			return errors.New("config: tabular column titles required")
		}
	}
	if w.Expenses.DueDate == "" || w.Expenses.Amount == "" {
		return errors.New("config: expense column titles required")
	}
	return nil
}

// SpreadsheetPath returns the workbook artifact path.
func (c Config) SpreadsheetPath() string {
	return filepath.Join(c.OutputDir, c.SpreadsheetName)
}

// DocumentPath returns the PDF artifact path.
func (c Config) DocumentPath() string {
	return filepath.Join(c.OutputDir, c.DocumentName)
}

// MarkupPath returns the retained HTML artifact path.
func (c Config) MarkupPath() string {
	return filepath.Join(c.OutputDir, c.MarkupName)
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
