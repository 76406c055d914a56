// ememarctl operaciones puntuales de la consola Eme Mar desde la terminal.
//
// Uso:
//
//	ememarctl hash-password <contraseña>        imprime el hash para OPERATOR_PASSWORD_HASH
//	ememarctl credit [búsqueda]                 ventas a crédito pendientes
//	ememarctl pay <saleId> <monto> [clave]      registra un abono
//	ememarctl statement <clientId> [salida.pdf] estado de cuenta de un cliente
//	ememarctl export [salida.xlsx]              libro de movimientos
//
// Lee .env del directorio actual si existe.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/auth"
	"github.com/jhoicas/ememar-console/internal/application/credit"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/reports"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/infrastructure/emeapi"
	infraexport "github.com/jhoicas/ememar-console/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/ememar-console/internal/infrastructure/pdf"
	"github.com/jhoicas/ememar-console/pkg/config"
	"github.com/jhoicas/ememar-console/pkg/logger"
)

type app struct {
	credit  *credit.CreditUseCase
	reports *reports.ReportsUseCase
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	_ = godotenv.Load()

	if os.Args[1] == "hash-password" {
		if len(os.Args) < 3 {
			usage()
		}
		hash, err := auth.HashPassword(os.Args[2])
		if err != nil {
			fail("hash", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail("configuración", err)
	}
	level := cfg.App.LogLevel
	if level == "info" {
		level = "warn"
	}
	zl := logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr}).Zerolog()

	c := emeapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), zl)
	clientRepo := emeapi.NewClientRepository(c)
	creditRepo := emeapi.NewCreditRepository(c)
	moveRepo := emeapi.NewMovementRepository(c)
	offset := cfg.API.DisplayOffset()

	a := app{
		credit: credit.NewCreditUseCase(creditRepo, clientRepo, offset, zl),
		reports: reports.NewReportsUseCase(clientRepo, creditRepo, moveRepo,
			infrapdf.NewMarotoStatementGenerator(), infraexport.NewExcelLedger(), offset, zl),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	args := os.Args[2:]
	switch os.Args[1] {
	case "credit":
		err = a.listCredit(ctx, arg(args, 0, ""))
	case "pay":
		err = a.pay(ctx, args)
	case "statement":
		err = a.statement(ctx, args)
	case "export":
		err = a.export(ctx, arg(args, 0, "movimientos.xlsx"))
	default:
		usage()
	}
	if err != nil {
		fail(os.Args[1], err)
	}
}

func (a app) listCredit(ctx context.Context, query string) error {
	list := a.credit.ListSales(ctx, query, true)
	if list.Degraded {
		return domain.ErrUnavailable
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VENTA\tCLIENTE\tTOTAL\tPENDIENTE\tFECHA\tDESCRIPCIÓN")
	for _, s := range list.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.SaleID, s.ClientName, s.Total.StringFixed(2), s.RemainingDisplay, s.DateDisplay, s.Description)
	}
	return w.Flush()
}

func (a app) pay(ctx context.Context, args []string) error {
	if len(args) < 2 {
		usage()
	}
	saleID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("saleId inválido: %w", domain.ErrInvalidInput)
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("monto inválido: %w", domain.ErrInvalidInput)
	}
	res, err := a.credit.SubmitPayment(ctx, dto.PaymentRequest{CreditSaleID: saleID, Amount: amount}, arg(args, 2, ""))
	if err != nil {
		return fmt.Errorf("%s: %w", domain.UserMessage(err, credit.MsgPaymentFailed), err)
	}
	fmt.Println(res.Message)
	if res.Client != nil {
		fmt.Printf("%s ahora debe %s\n", res.Client.Name, res.Client.DebtDisplay)
	}
	return nil
}

func (a app) statement(ctx context.Context, args []string) error {
	if len(args) < 1 {
		usage()
	}
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("clientId inválido: %w", domain.ErrInvalidInput)
	}
	pdf, err := a.reports.Statement(ctx, clientID)
	if err != nil {
		return err
	}
	return write(arg(args, 1, fmt.Sprintf("estado-cuenta-%d.pdf", clientID)), pdf)
}

func (a app) export(ctx context.Context, out string) error {
	xlsx, err := a.reports.Ledger(ctx)
	if err != nil {
		return err
	}
	return write(out, xlsx)
}

func write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Escrito: %s (%d bytes)\n", path, len(data))
	return nil
}

func arg(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: ememarctl hash-password|credit|pay|statement|export [args]")
	os.Exit(2)
}
