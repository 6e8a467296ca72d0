// Command kdb is a reference client exercising GETKEY and GETCHILD
// against a running kdbd daemon, for manual testing end to end —
// grounded on hivekit's examples/builder/simple as "a small runnable
// program that exercises the library".
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/protocol"
)

func main() {
	app := &cli.App{
		Name:  "kdb",
		Usage: "query a running kdbd daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "socket",
				Usage: "kdbd's listen socket path",
				Value: "/run/kdbd/kdbd.sock",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "fetch a single key by name",
				ArgsUsage: "<name>",
				Action:    runGet,
			},
			{
				Name:      "ls",
				Usage:     "list the direct children of a key",
				ArgsUsage: "<name>",
				Action:    runList,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dial(c *cli.Context) (net.Conn, error) {
	return net.Dial("unix", c.String("socket"))
}

func runGet(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("usage: kdb get <name>")
	}
	conn, err := dial(c)
	if err != nil {
		return err
	}
	defer conn.Close()

	req := protocol.NewRequest(protocol.GETKEY, protocol.EncodeKeyArg(kdbkey.New(name)))
	if err := protocol.WriteMessage(conn, req); err != nil {
		return err
	}
	reply, err := protocol.ReadMessage(conn)
	if err != nil {
		return err
	}
	status, result, err := protocol.DecodeReplyStatus(reply.Payload)
	if err != nil {
		return err
	}
	if status != protocol.StatusOK {
		return fmt.Errorf("kdbd: %s", status)
	}
	k, err := protocol.DecodeKeyReply(result)
	if err != nil {
		return err
	}
	buf := make([]byte, k.Value().Size())
	if k.Value().IsBinary() {
		n, err := k.Value().GetBinary(buf)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %x\n", k.Name().String(), buf[:n])
		return nil
	}
	n, err := k.Value().GetString(buf)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %q\n", k.Name().String(), string(buf[:n-1]))
	return nil
}

func runList(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("usage: kdb ls <name>")
	}
	conn, err := dial(c)
	if err != nil {
		return err
	}
	defer conn.Close()

	req := protocol.NewRequest(protocol.GETCHILD, protocol.EncodeKeyArg(kdbkey.New(name)))
	if err := protocol.WriteMessage(conn, req); err != nil {
		return err
	}
	reply, err := protocol.ReadMessage(conn)
	if err != nil {
		return err
	}
	status, result, err := protocol.DecodeReplyStatus(reply.Payload)
	if err != nil {
		return err
	}
	if status != protocol.StatusOK {
		return fmt.Errorf("kdbd: %s", status)
	}
	children, err := protocol.DecodeKeySetReply(result)
	if err != nil {
		return err
	}
	children.Rewind()
	for k := children.Next(); k != nil; k = children.Next() {
		fmt.Println(k.Name().String())
	}
	return nil
}
