// Command console is a terminal front-end for the user directory API. It
// drives the same list/form controller the web UI is modeled on: list, add,
// edit and delete users against a running API server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"userhub_backend/internal/webclient"
)

const defaultAPIURL = "http://localhost:3000"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	client := webclient.NewClient(apiURL, 10*time.Second)
	in := bufio.NewScanner(os.Stdin)

	confirm := func(u webclient.User) bool {
		fmt.Printf("really delete %s (%s)? [y/N] ", u.Name, u.Email)
		if !in.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(in.Text()))
		return answer == "y" || answer == "yes"
	}
	ctrl := webclient.NewController(client, confirm)

	ctx := context.Background()
	if text, err := client.Liveness(ctx); err != nil {
		log.Println("[WARN] API not reachable:", err)
	} else {
		fmt.Println(text)
	}

	ctrl.Load(ctx)
	printNotification(ctrl)
	printUsers(ctrl)

	fmt.Println(`commands: list, add, edit <id>, del <id>, quit`)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			ctrl.Load(ctx)
			printNotification(ctrl)
			printUsers(ctrl)
		case "add":
			ctrl.SetForm(webclient.FormData{
				Name:  prompt(in, "name: "),
				Email: prompt(in, "email: "),
				Phone: prompt(in, "phone (optional): "),
			})
			ctrl.Submit(ctx)
			printNotification(ctrl)
			printUsers(ctrl)
		case "edit":
			if len(fields) != 2 {
				fmt.Println("usage: edit <id>")
				continue
			}
			if !ctrl.StartEdit(fields[1]) {
				fmt.Println("no such user in the list, run `list` first")
				continue
			}
			form := ctrl.Form()
			form.Name = promptKeep(in, "name", form.Name)
			form.Email = promptKeep(in, "email", form.Email)
			form.Phone = promptKeep(in, "phone", form.Phone)
			ctrl.SetForm(form)
			ctrl.Submit(ctx)
			printNotification(ctrl)
			printUsers(ctrl)
		case "del":
			if len(fields) != 2 {
				fmt.Println("usage: del <id>")
				continue
			}
			ctrl.Delete(ctx, fields[1])
			printNotification(ctrl)
			printUsers(ctrl)
		case "quit", "exit":
			return
		default:
			fmt.Println("commands: list, add, edit <id>, del <id>, quit")
		}
	}
}

// prompt reads one line after printing the label.
func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// promptKeep reads one line, keeping the current value when the input is empty.
func promptKeep(in *bufio.Scanner, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	if !in.Scan() {
		return current
	}
	if v := strings.TrimSpace(in.Text()); v != "" {
		return v
	}
	return current
}

func printNotification(ctrl *webclient.Controller) {
	if n := ctrl.Notification(); n != nil {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
	}
}

func printUsers(ctrl *webclient.Controller) {
	users := ctrl.Users()
	if len(users) == 0 {
		fmt.Println("no users yet")
		return
	}
	for _, u := range users {
		phone := "-"
		if u.Phone != nil {
			phone = *u.Phone
		}
		fmt.Printf("%s  %-20s %-30s %s\n", u.ID, u.Name, u.Email, phone)
	}
}
