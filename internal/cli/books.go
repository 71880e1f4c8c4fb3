package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"BookCatalog/pkg/bookspb"
)

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			c, closeConn, err := opts.client()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := opts.callContext(cmd)
			defer cancel()

			list, err := c.List(ctx, &bookspb.Empty{})
			if err != nil {
				return out.RPCError("ListBooks", err)
			}
			return out.Books(list.Books)
		},
	}
}

func NewInsertCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <id> <title> <author>",
		Short: "Insert a book",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			out := opts.formatter(cmd)
			c, closeConn, err := opts.client()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := opts.callContext(cmd)
			defer cancel()

			book := &bookspb.Book{Id: id, Title: args[1], Author: args[2]}
			if _, err := c.Insert(ctx, book); err != nil {
				return out.RPCError("InsertBook", err)
			}
			return out.Inserted(book)
		},
	}
}

func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a book by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			out := opts.formatter(cmd)
			c, closeConn, err := opts.client()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := opts.callContext(cmd)
			defer cancel()

			book, err := c.Get(ctx, &bookspb.BookIdRequest{Id: id})
			if err != nil {
				return out.RPCError("GetBook", err)
			}
			return out.Book(book)
		},
	}
}

func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			out := opts.formatter(cmd)
			c, closeConn, err := opts.client()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := opts.callContext(cmd)
			defer cancel()

			if _, err := c.Delete(ctx, &bookspb.BookIdRequest{Id: id}); err != nil {
				return out.RPCError("DeleteBook", err)
			}
			return out.Deleted(id)
		},
	}
}

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	Count int
}

func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream catalog changes until interrupted",
		Long: `Stream catalog changes until interrupted.

Every insert and delete applied after the watch is registered is printed in
the order the server applied it. --timeout does not apply to watch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchBooks(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 0, "exit after this many events (0 = unlimited)")

	return cmd
}

func watchBooks(opts *WatchOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	c, closeConn, err := opts.client()
	if err != nil {
		return err
	}
	defer closeConn()

	stream, err := c.Watch(cmd.Context(), &bookspb.Empty{})
	if err != nil {
		return out.RPCError("WatchBooks", err)
	}
	// Headers arrive once the server has registered the watch.
	if _, err := stream.Header(); err != nil {
		return out.RPCError("WatchBooks", err)
	}
	out.WatchStarted()

	for n := 0; opts.Count == 0 || n < opts.Count; n++ {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			return nil
		}
		if err != nil {
			return out.RPCError("WatchBooks", err)
		}
		if err := out.Event(ev); err != nil {
			return err
		}
	}
	return nil
}
