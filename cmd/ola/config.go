package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-sif/ola"
	"github.com/go-sif/ola/aggregators"
	"github.com/go-sif/ola/logging"
	"github.com/go-sif/ola/schema"
	"github.com/go-sif/ola/sketch"
)

// Configuration holds the parsed command-line arguments
type Configuration struct {
	Input            string
	Format           string
	HeaderLines      int
	NilValue         string
	DSN              string
	Query            string
	Schema           string
	Aggregator       string
	GroupBy          string
	Value            string
	Filter           string
	FilterValue      string
	HasFilterValue   bool
	TotalRows        int64
	SliceSize        int
	Precision        uint
	Seed             uint64
	Output           string
	Compress         bool
	AMQPURL          string
	AMQPExchange     string
	AMQPExchangeType string
	AMQPRoutingKey   string
	LogLevel         string
}

// parseArguments processes command-line flags
func parseArguments(name string, args []string, output io.Writer) (*Configuration, error) {
	config := &Configuration{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.Input, "input", "", "Glob of input files")
	fs.StringVar(&config.Format, "format", "", "Input format: csv, tsv or jsonl. Inferred from the input extension if omitted")
	fs.IntVar(&config.HeaderLines, "header-lines", -1, "Lines to skip at the start of each file. Defaults to 1 for csv/tsv and 0 for jsonl")
	fs.StringVar(&config.NilValue, "nil-value", "", "A string which represents nil values in csv/tsv input")
	fs.StringVar(&config.DSN, "dsn", "", "PostgreSQL connection string, used instead of -input")
	fs.StringVar(&config.Query, "query", "", "SQL query to aggregate, used with -dsn")
	fs.StringVar(&config.Schema, "schema", "", "Input schema, e.g. store:varstring,amount:float64")
	fs.StringVar(&config.Aggregator, "agg", "avg", "Aggregator: avg, filter-avg, group-avg, group-sum, group-count or filter-distinct")
	fs.StringVar(&config.GroupBy, "group", "", "Group-by column")
	fs.StringVar(&config.Value, "value", "", "Value column")
	fs.StringVar(&config.Filter, "filter", "", "Filter column")
	fs.StringVar(&config.FilterValue, "filter-value", "", "Filter value, parsed according to the filter column's type. \"null\" matches nothing")
	fs.Int64Var(&config.TotalRows, "total-rows", 0, "Total rows in the dataset, for scaled aggregators. Counted ahead of time if omitted")
	fs.IntVar(&config.SliceSize, "slice-size", 128, "Maximum rows per slice")
	fs.UintVar(&config.Precision, "precision", sketch.DefaultPrecision, "HyperLogLog precision, for filter-distinct")
	fs.Uint64Var(&config.Seed, "seed", sketch.DefaultSeed, "HyperLogLog hash seed, for filter-distinct")
	fs.StringVar(&config.Output, "output", "-", "File to stream estimates to as JSON lines, or - for stdout")
	fs.BoolVar(&config.Compress, "compress", false, "lz4-compress the output")
	fs.StringVar(&config.AMQPURL, "amqp-url", "", "If set, also publish estimates to this AMQP broker")
	fs.StringVar(&config.AMQPExchange, "amqp-exchange", "", "AMQP exchange to publish to")
	fs.StringVar(&config.AMQPExchangeType, "amqp-exchange-type", "", "If set, declare the AMQP exchange with this type")
	fs.StringVar(&config.AMQPRoutingKey, "amqp-routing-key", "", "AMQP routing key. Defaults to the aggregator name")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error or fatal")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "filter-value" {
			config.HasFilterValue = true
		}
	})
	return config, config.validate()
}

func (c *Configuration) validate() error {
	if len(c.Schema) == 0 {
		return fmt.Errorf("-schema is required")
	}
	if (len(c.Input) == 0) == (len(c.DSN) == 0) {
		return fmt.Errorf("exactly one of -input or -dsn is required")
	}
	if len(c.DSN) > 0 && len(c.Query) == 0 {
		return fmt.Errorf("-query is required with -dsn")
	}
	if len(c.Input) > 0 {
		format, err := c.inputFormat()
		if err != nil {
			return err
		}
		c.Format = format
		if c.HeaderLines < 0 {
			c.HeaderLines = 0
			if format != "jsonl" {
				c.HeaderLines = 1
			}
		}
	}
	if c.TotalRows < 0 {
		return fmt.Errorf("-total-rows must not be negative")
	}
	if c.Precision > sketch.MaxPrecision {
		return fmt.Errorf("-precision must be between %d and %d", sketch.MinPrecision, sketch.MaxPrecision)
	}
	return nil
}

func (c *Configuration) inputFormat() (string, error) {
	format := strings.ToLower(c.Format)
	if len(format) == 0 {
		switch strings.ToLower(filepath.Ext(c.Input)) {
		case ".csv":
			format = "csv"
		case ".tsv", ".tab":
			format = "tsv"
		case ".jsonl", ".ndjson", ".json":
			format = "jsonl"
		default:
			return "", fmt.Errorf("unable to infer the format of %s; use -format", c.Input)
		}
	}
	switch format {
	case "csv", "tsv", "jsonl":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %s", format)
	}
}

// aggregatorConf builds the aggregators.Conf described by this Configuration
func (c *Configuration) aggregatorConf(sch ola.Schema, logger *logging.Logger) (*aggregators.Conf, error) {
	conf := &aggregators.Conf{
		GroupByColumn:      c.GroupBy,
		ValueColumn:        c.Value,
		FilterColumn:       c.Filter,
		TotalRowCount:      c.TotalRows,
		EstimatorPrecision: uint8(c.Precision),
		EstimatorSeed:      c.Seed,
		Schema:             sch,
		Logger:             logger,
	}
	if c.HasFilterValue && len(c.Filter) > 0 && c.FilterValue != "null" {
		col, err := sch.GetOffset(c.Filter)
		if err != nil {
			return nil, err
		}
		v, err := col.Type().Parse(c.FilterValue)
		if err != nil {
			return nil, fmt.Errorf("-filter-value %s is not a valid %s: %w", c.FilterValue, col.Type().Name(), err)
		}
		conf.FilterValue = v
	}
	return conf, nil
}

func (c *Configuration) parseSchema() (ola.Schema, error) {
	return schema.ParseSchema(c.Schema)
}
