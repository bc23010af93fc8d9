package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	soupmarket "github.com/Ismael0303/SOUP-Market-sub001"
	"github.com/Ismael0303/SOUP-Market-sub001/client"
	"github.com/jessevdk/go-flags"
)

// Status is printed by the status, login and logout commands.
type Status struct {
	URL           string `json:"url"`
	Authenticated bool   `json:"authenticated"`
}

func Run(args []string) error {
	return Execute(context.Background(), args, os.Stdout)
}

// Execute parses args, runs the selected command and writes its JSON result to stdout.
func Execute(ctx context.Context, args []string, stdout io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, err = fmt.Fprintln(stdout, flagsErr.Message)
			return err
		}
		return err
	}
	if options.ConfigURL != "" {
		config, err := LoadConfig(ctx, options.ConfigURL)
		if err != nil {
			return err
		}
		options.Merge(config)
	}
	options.Init()

	cli, err := soupmarket.NewClient(&options.ClientOptions)
	if err != nil {
		return err
	}
	options.Logger.WithField("command", parser.Active.Name).WithField("url", options.URL).Debug("running")

	var result interface{}
	switch parser.Active.Name {
	case "login":
		if _, err = cli.Login(ctx, &client.Credentials{Username: options.Login.Username, Password: options.Login.Password}); err != nil {
			return err
		}
		result, err = status(ctx, cli)
	case "logout":
		if err = cli.Logout(ctx); err != nil {
			return err
		}
		result, err = status(ctx, cli)
	case "status":
		result, err = status(ctx, cli)
	case "list":
		result, err = cli.ListReviews(ctx)
	case "get":
		result, err = cli.GetReview(ctx, options.Get.ID)
	case "create":
		review := &client.Review{Rating: options.Create.Rating, Comment: options.Create.Comment}
		if options.Create.Product != 0 {
			review.Product = &options.Create.Product
		}
		result, err = cli.CreateReview(ctx, review)
	default:
		return fmt.Errorf("unsupported command: %v", parser.Active.Name)
	}
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func status(ctx context.Context, cli *client.Client) (*Status, error) {
	authenticated, err := cli.Session().IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{URL: cli.BaseURL(), Authenticated: authenticated}, nil
}
