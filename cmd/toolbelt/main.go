package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/log"
	toolbelt "github.com/ghetzel/go-toolbelt"
	"github.com/ghetzel/go-toolbelt/archive"
	"github.com/ghetzel/go-toolbelt/fileops"
	"github.com/ghetzel/go-toolbelt/imaging"
	"github.com/ghetzel/go-toolbelt/nethelp"
	"github.com/ghetzel/go-toolbelt/randutil"
	"github.com/ghetzel/go-toolbelt/sysinfo"
	"github.com/ghetzel/go-toolbelt/tabular"
	"github.com/ghetzel/go-toolbelt/timefmt"
)

func main() {
	app := cli.NewApp()
	app.Name = toolbelt.ApplicationName
	app.Usage = toolbelt.ApplicationSummary
	app.Version = toolbelt.ApplicationVersion
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `info`,
			EnvVar: `LOGLEVEL`,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      `hash`,
			Usage:     `Print the SHA-256 checksum of one or more files.`,
			ArgsUsage: `FILE [FILE ..]`,
			Action: func(c *cli.Context) {
				if c.NArg() == 0 {
					log.Fatalf("at least one file is required")
				}

				for _, path := range c.Args() {
					if sum, err := fileops.ChecksumSHA256(path); err == nil {
						fmt.Printf("%s  %s\n", sum, path)
					} else {
						log.Fatalf("%s: %v", path, err)
					}
				}
			},
		}, {
			Name:      `zip`,
			Usage:     `Create a zip archive from the given files and directories.`,
			ArgsUsage: `ARCHIVE SOURCE [SOURCE ..]`,
			Action: func(c *cli.Context) {
				if c.NArg() < 2 {
					log.Fatalf("an archive name and at least one source are required")
				}

				args := c.Args()
				log.FatalIf(archive.ZipCreate(args.First(), args.Tail()...))
			},
		}, {
			Name:      `unzip`,
			Usage:     `Extract a zip archive into a directory.`,
			ArgsUsage: `ARCHIVE [DESTINATION]`,
			Action: func(c *cli.Context) {
				source := c.Args().First()

				if source == `` {
					log.Fatalf("an archive name is required")
				}

				destination := c.Args().Get(1)

				if destination == `` {
					destination = `.`
				}

				log.FatalIf(archive.ZipExtract(source, destination))
			},
		}, {
			Name:      `ls-zip`,
			Usage:     `List the contents of a zip archive.`,
			ArgsUsage: `ARCHIVE`,
			Action: func(c *cli.Context) {
				entries, err := archive.ZipList(c.Args().First())
				log.FatalIf(err)

				table := tabular.New(`name`, `size`, `compressed`)

				for _, entry := range entries {
					table.Append(entry.Name, entry.Size, entry.CompressedSize)
				}

				fmt.Println(table.String())
			},
		}, {
			Name:      `fetch`,
			Usage:     `Perform an HTTP GET and print the response body.`,
			ArgsUsage: `URL`,
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  `header, H`,
					Usage: `A "Name: Value" header to send with the request.`,
				},
			},
			Action: func(c *cli.Context) {
				url := c.Args().First()

				if url == `` {
					log.Fatalf("a URL is required")
				}

				headers := make(map[string]string)

				for _, pair := range c.StringSlice(`header`) {
					if name, value := splitHeader(pair); name != `` {
						headers[name] = value
					}
				}

				response, err := nethelp.Get(context.Background(), url, &nethelp.RequestOptions{
					Headers: headers,
				})

				log.FatalIf(err)

				if response.IsError() {
					log.Fatalf("%s: %s", url, response.Status)
				}

				fmt.Println(response.String())
			},
		}, {
			Name:  `sysinfo`,
			Usage: `Print a summary of the local host, CPU, memory, and disk.`,
			Action: func(c *cli.Context) {
				host, err := sysinfo.Host()
				log.FatalIf(err)

				memory, err := sysinfo.Memory()
				log.FatalIf(err)

				disk, err := sysinfo.Disk(`/`)
				log.FatalIf(err)

				uptime, err := timefmt.Duration(int64(host.Uptime/time.Second), `s`)
				log.FatalIf(err)

				table := tabular.New(`property`, `value`)
				table.Append(`hostname`, host.Hostname)
				table.Append(`platform`, host.Platform+` `+host.PlatformVersion)
				table.Append(`uptime`, uptime)
				table.Append(`memory used`, fmt.Sprintf("%.1f%%", memory.UsedPercent))
				table.Append(`disk used`, fmt.Sprintf("%.1f%%", disk.UsedPercent))

				fmt.Println(table.String())
			},
		}, {
			Name:  `ps`,
			Usage: `List running processes, optionally filtered by name.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `name, n`,
					Usage: `Only show processes whose name contains this string.`,
				},
			},
			Action: func(c *cli.Context) {
				var procs []*sysinfo.ProcessInfo
				var err error

				if name := c.String(`name`); name != `` {
					procs, err = sysinfo.FindProcesses(name)
				} else {
					procs, err = sysinfo.Processes()
				}

				log.FatalIf(err)

				table := tabular.New(`pid`, `name`, `user`, `rss`)

				for _, proc := range procs {
					table.Append(proc.PID, proc.Name, proc.Username, proc.RSS)
				}

				fmt.Println(table.String())
			},
		}, {
			Name:  `random`,
			Usage: `Generate random identifiers.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `type, t`,
					Usage: `What to generate: "uuid", "id", "token", or "string".`,
					Value: `uuid`,
				},
				cli.IntFlag{
					Name:  `length, l`,
					Usage: `Output length for "id", "token", and "string".`,
					Value: 16,
				},
				cli.IntFlag{
					Name:  `count, c`,
					Usage: `How many values to generate.`,
					Value: 1,
				},
			},
			Action: func(c *cli.Context) {
				for i := 0; i < c.Int(`count`); i++ {
					switch kind := c.String(`type`); kind {
					case `uuid`:
						fmt.Println(randutil.UUID())
					case `id`:
						value, err := randutil.ID(c.Int(`length`))
						log.FatalIf(err)
						fmt.Println(value)
					case `token`:
						value, err := randutil.Token(c.Int(`length`))
						log.FatalIf(err)
						fmt.Println(value)
					case `string`:
						value, err := randutil.String(c.Int(`length`))
						log.FatalIf(err)
						fmt.Println(value)
					default:
						log.Fatalf("unknown type %q", kind)
					}
				}
			},
		}, {
			Name:      `table`,
			Usage:     `Read a CSV file and print it as an aligned text table.`,
			ArgsUsage: `FILE`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `sort-by, s`,
					Usage: `Sort rows by the named column.`,
				},
				cli.BoolFlag{
					Name:  `summarize`,
					Usage: `Print summary statistics for each numeric column instead of the rows.`,
				},
			},
			Action: func(c *cli.Context) {
				data, err := os.ReadFile(c.Args().First())
				log.FatalIf(err)

				table, err := tabular.FromCSV(bytes.NewReader(data), ',')
				log.FatalIf(err)

				if column := c.String(`sort-by`); column != `` {
					log.FatalIf(table.SortBy(column))
				}

				if c.Bool(`summarize`) {
					out := tabular.New(`column`, `min`, `max`, `mean`, `sum`)

					for _, column := range table.Columns {
						if summary, err := table.Summarize(column); err == nil {
							out.Append(column, summary.Min, summary.Max, summary.Mean, summary.Sum)
						}
					}

					fmt.Println(out.String())
				} else {
					fmt.Println(table.String())
				}
			},
		}, {
			Name:      `thumbnail`,
			Usage:     `Write a scaled-down copy of an image.`,
			ArgsUsage: `SOURCE DESTINATION`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  `max, m`,
					Usage: `Maximum width or height of the output image.`,
					Value: 256,
				},
				cli.IntFlag{
					Name:  `quality, q`,
					Usage: `JPEG output quality.`,
					Value: imaging.DefaultQuality,
				},
			},
			Action: func(c *cli.Context) {
				source := c.Args().First()
				destination := c.Args().Get(1)

				if source == `` || destination == `` {
					log.Fatalf("a source and destination are required")
				}

				img, _, err := imaging.DecodeFile(source)
				log.FatalIf(err)

				thumb, err := imaging.Thumbnail(img, c.Int(`max`))
				log.FatalIf(err)

				out, err := os.Create(destination)
				log.FatalIf(err)
				defer out.Close()

				format := `jpg`

				if i := strings.LastIndex(destination, `.`); i >= 0 && i < len(destination)-1 {
					format = strings.ToLower(destination[i+1:])
				}

				log.FatalIf(imaging.Encode(out, thumb, format, c.Int(`quality`)))
			},
		},
	}

	app.Run(os.Args)
}

func splitHeader(pair string) (string, string) {
	if name, value, ok := strings.Cut(pair, `:`); ok {
		return strings.TrimSpace(name), strings.TrimSpace(value)
	}

	return ``, ``
}
