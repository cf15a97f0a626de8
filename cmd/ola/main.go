// Command ola runs an online aggregation over a set of files or a PostgreSQL query,
// streaming a refined estimate after every slice of rows
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/aggregators"
	"github.com/go-sif/ola/datasource"
	"github.com/go-sif/ola/datasource/database"
	"github.com/go-sif/ola/datasource/file"
	"github.com/go-sif/ola/datasource/parser/dsv"
	"github.com/go-sif/ola/datasource/parser/jsonl"
	"github.com/go-sif/ola/driver"
	"github.com/go-sif/ola/logging"
	"github.com/go-sif/ola/sink"
	_ "github.com/lib/pq" // PostgreSQL driver
)

func main() {
	config, err := parseArguments(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, config, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}
}

// openSource opens the configured input, returning a function which releases it
func openSource(ctx context.Context, config *Configuration, sch ola.Schema) (ola.DataSource, func() error, error) {
	if len(config.DSN) > 0 {
		db, err := sql.Open("postgres", config.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		source, err := database.CreateDataSource(db, config.Query, nil, sch, &database.Conf{SliceSize: config.SliceSize})
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return source, db.Close, nil
	}
	var parser datasource.Parser
	switch config.Format {
	case "jsonl":
		parser = jsonl.CreateParser(&jsonl.ParserConf{SliceSize: config.SliceSize, HeaderLines: config.HeaderLines})
	case "tsv":
		parser = dsv.CreateParser(&dsv.ParserConf{SliceSize: config.SliceSize, HeaderLines: config.HeaderLines, Delimiter: '\t', NilValue: config.NilValue})
	default:
		parser = dsv.CreateParser(&dsv.ParserConf{SliceSize: config.SliceSize, HeaderLines: config.HeaderLines, NilValue: config.NilValue})
	}
	source, err := file.CreateDataSource(config.Input, parser, sch)
	if err != nil {
		return nil, nil, err
	}
	return source, func() error { return nil }, nil
}

// createSink builds the stream sink, and the AMQP sink if one is configured
func createSink(config *Configuration, name string, stdout io.Writer) (ola.Sink, func() error, error) {
	out := stdout
	var outFile *os.File
	if config.Output != "-" {
		f, err := os.Create(config.Output)
		if err != nil {
			return nil, nil, err
		}
		outFile = f
		out = f
	}
	stream := sink.CreateStreamSink(out, &sink.StreamConf{Name: name, Compress: config.Compress})
	closers := []func() error{stream.Close}
	if outFile != nil {
		closers = append(closers, outFile.Close)
	}
	sinks := []ola.Sink{stream}
	if len(config.AMQPURL) > 0 {
		amqpSink, err := sink.DialAMQPSink(config.AMQPURL, &sink.AMQPConf{
			Name:         name,
			Exchange:     config.AMQPExchange,
			ExchangeType: config.AMQPExchangeType,
			RoutingKey:   config.AMQPRoutingKey,
		})
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		sinks = append(sinks, amqpSink)
		closers = append(closers, amqpSink.Close)
	}
	closeAll := func() error {
		var firstErr error
		for _, c := range closers {
			if err := c(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return sink.Tee(sinks...), closeAll, nil
}

func run(ctx context.Context, config *Configuration, stdout io.Writer, stderr io.Writer) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.CreateLogger(stderr, "ola", level)

	kind, err := aggregators.ParseKind(config.Aggregator)
	if err != nil {
		return err
	}
	sch, err := config.parseSchema()
	if err != nil {
		return err
	}
	source, closeSource, err := openSource(ctx, config, sch)
	if err != nil {
		return err
	}
	defer closeSource()

	if kind.IsScaled() && config.TotalRows == 0 {
		total, err := source.CountRows(ctx)
		if err != nil {
			return fmt.Errorf("unable to count rows: %w", err)
		}
		logger.Infof("counted %d rows", total)
		config.TotalRows = total
	}
	conf, err := config.aggregatorConf(sch, logger)
	if err != nil {
		return err
	}

	out, closeSinks, err := createSink(config, kind.String(), stdout)
	if err != nil {
		return err
	}
	agg, err := aggregators.Create(kind, out, conf)
	if err != nil {
		closeSinks()
		return err
	}
	d, err := driver.CreateDriver(&driver.Conf{Logger: logger}, agg)
	if err != nil {
		closeSinks()
		return err
	}
	it, err := source.Open(ctx)
	if err != nil {
		closeSinks()
		return err
	}
	runErr := d.Run(ctx, it)
	if err := closeSinks(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}
	logger.Infof("final estimate: %s", agg.Estimate().ToString())
	return nil
}
