// Package main is the entry point for the paystack command line client
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/harshitrajsinha/paystack-go"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"gopkg.in/natefinch/lumberjack.v2"
)

const usage = `usage: paystack <command> [flags]

commands:
  verify          verify a transaction by reference
  initialize      start a checkout and print its authorization url
  banks           list banks of a country
  balance         show the integration balance
  page-qr         write the QR code of a payment page as PNG
  webhook-verify  check a webhook body against its signature
  webhook-listen  receive webhooks and log their events
`

func init() {
	// load env vars into application
	_ = godotenv.Load()

	// set log flags for UTC timezone and file identification
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)

	// set log rotation and output path
	log.SetOutput(&lumberjack.Logger{
		Filename:   "logs/paystack.log",
		MaxAge:     28,
		MaxSize:    5,
		MaxBackups: 3,
		Compress:   true,
	})
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		log.Printf("[ERROR] %s: %v", os.Args[1], err)
		fmt.Fprintln(os.Stderr, err)

		var apiErr *paystack.APIError
		if errors.As(err, &apiErr) {
			_ = printJSON(os.Stderr, apiErr)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "verify":
		return verify(ctx, args, out)
	case "initialize":
		return initialize(ctx, args, out)
	case "banks":
		return banks(ctx, args, out)
	case "balance":
		return balance(ctx, args, out)
	case "page-qr":
		return pageQR(args, out)
	case "webhook-verify":
		return webhookVerify(args, out)
	case "webhook-listen":
		return webhookListen(ctx, args)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func newClient(fs *flag.FlagSet, args []string) (*paystack.Client, error) {
	debug := fs.Bool("debug", false, "log full request urls")
	timeout := fs.Duration("timeout", 0, "request timeout, defaults to PAYSTACK_TIMEOUT")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := []paystack.Option{paystack.WithLogger(log.Default())}
	if *debug {
		opts = append(opts, paystack.WithDebug(true))
	}
	if *timeout > 0 {
		opts = append(opts, paystack.WithTimeout(*timeout))
	}
	return paystack.New("", opts...)
}

func verify(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	client, err := newClient(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("verify takes exactly one reference")
	}

	res, err := client.Transactions.Verify(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(out, res)
}

func initialize(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("initialize", flag.ContinueOnError)
	email := fs.String("email", "", "customer email")
	amount := fs.String("amount", "", "amount in major units, e.g. 1500.50")
	currency := fs.String("currency", string(paystack.NGN), "currency code")
	prefix := fs.String("prefix", "cli_", "reference prefix")
	client, err := newClient(fs, args)
	if err != nil {
		return err
	}

	major, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("error parsing amount %q, %w", *amount, err)
	}
	sub, err := paystack.ToSubunit(major)
	if err != nil {
		return err
	}

	res, err := client.Transactions.Initialize(ctx, &paystack.InitializeTransactionParams{
		Email:     *email,
		Amount:    fmt.Sprint(sub),
		Currency:  paystack.Currency(*currency),
		Reference: paystack.NewReference(*prefix),
	})
	if err != nil {
		return err
	}
	log.Printf("[INFO] initialized transaction %s", res.Data.Reference)
	return printJSON(out, res)
}

func banks(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("banks", flag.ContinueOnError)
	country := fs.String("country", "nigeria", "ghana, kenya, nigeria or south africa")
	client, err := newClient(fs, args)
	if err != nil {
		return err
	}

	res, err := client.Miscellaneous.ListBanks(ctx, &paystack.ListBanksParams{Country: *country})
	if err != nil {
		return err
	}
	return printJSON(out, res.Data)
}

func balance(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	client, err := newClient(fs, args)
	if err != nil {
		return err
	}

	res, err := client.TransfersControl.CheckBalance(ctx)
	if err != nil {
		return err
	}

	type row struct {
		Currency string          `json:"currency"`
		Balance  decimal.Decimal `json:"balance"`
	}
	rows := make([]row, 0, len(res.Data))
	for _, b := range res.Data {
		rows = append(rows, row{Currency: b.Currency, Balance: paystack.FromSubunit(b.Balance)})
	}
	return printJSON(out, rows)
}

func pageQR(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("page-qr", flag.ContinueOnError)
	size := fs.Int("size", 256, "image size in pixels")
	file := fs.String("o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("page-qr takes exactly one page slug")
	}

	png, err := paystack.PaymentPageQR(fs.Arg(0), *size)
	if err != nil {
		return err
	}
	if *file == "" {
		_, err = out.Write(png)
		return err
	}
	return os.WriteFile(*file, png, 0o644)
}

func webhookVerify(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("webhook-verify", flag.ContinueOnError)
	signature := fs.String("signature", "", "value of the x-paystack-signature header")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("webhook-verify takes exactly one body file")
	}

	body, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("error reading webhook body, %w", err)
	}

	client, err := paystack.New("")
	if err != nil {
		return err
	}
	ev, err := client.ParseWebhook(body, *signature)
	if err != nil {
		return err
	}
	return printJSON(out, map[string]any{"event": ev.Event, "data": ev.Data})
}

func webhookListen(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("webhook-listen", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "listen address")
	client, err := newClient(fs, args)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	r := webhookRouter(client, newEventCounter(reg), reg)

	srv := &http.Server{Addr: *addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[INFO] listening for webhooks on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error serving webhooks, %w", err)
	}
	return nil
}

// newEventCounter registers the webhook event counter on reg
func newEventCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paystack_webhook_events_total",
		Help: "Webhook events received, by event name.",
	}, []string{"event"})
	reg.MustRegister(events)
	return events
}

// webhookRouter accepts signed webhooks on POST /webhook and serves metrics from gatherer
func webhookRouter(client *paystack.Client, events *prometheus.CounterVec, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Post("/webhook", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(io.LimitReader(req.Body, 1<<20))
		if err != nil {
			http.Error(w, "error reading body", http.StatusBadRequest)
			return
		}
		ev, err := client.ParseWebhook(body, req.Header.Get(paystack.SignatureHeader))
		if err != nil {
			log.Printf("[ERROR] rejected webhook: %v", err)
			http.Error(w, "invalid webhook", http.StatusUnauthorized)
			return
		}
		events.WithLabelValues(ev.Event).Inc()
		log.Printf("[INFO] webhook %s", ev.Event)
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
