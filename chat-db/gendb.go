package main

import (
	"fmt"
	"log"

	"github.com/chatwire/chat/server/store"
	"github.com/chatwire/chat/server/store/types"
)

// User is a user in data.json.
type User struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Image     string `json:"image"`
}

// Friendship is a friend request in data.json, by usernames.
type Friendship struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Accepted bool   `json:"accepted"`
}

// Group is a group in data.json. Members join through accepted requests, pending
// lists users with a request waiting for the admin.
type Group struct {
	Name    string   `json:"name"`
	Image   string   `json:"image"`
	Admin   string   `json:"admin"`
	Members []string `json:"members"`
	Pending []string `json:"pending"`
}

// Message is a chat message in data.json. Exactly one of To and Group is set.
type Message struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Group string `json:"group"`
	Text  string `json:"text"`
}

// Data is the content of data.json.
type Data struct {
	Users    []User       `json:"users"`
	Friends  []Friendship `json:"friends"`
	Groups   []Group      `json:"groups"`
	Messages []Message    `json:"messages"`
}

type nameIndex map[string]types.Uid

func (idx nameIndex) get(username string) (types.Uid, error) {
	if uid, ok := idx[username]; ok {
		return uid, nil
	}
	return types.ZeroUid, fmt.Errorf("unknown user '%s'", username)
}

// genDb loads sample data through the store.
func genDb(data *Data) error {
	if len(data.Users) == 0 {
		log.Println("No data provided, stopping")
		return nil
	}

	users := make(nameIndex, len(data.Users))

	log.Println("Generating users...")
	for _, uu := range data.Users {
		user, err := store.Users.Create(&types.User{
			Username:  uu.Username,
			Email:     uu.Email,
			FirstName: uu.FirstName,
			LastName:  uu.LastName,
			Image:     uu.Image,
		})
		if err != nil {
			return fmt.Errorf("user '%s': %w", uu.Username, err)
		}
		users[uu.Username] = user.Id
	}

	log.Println("Generating friendships...")
	for _, ff := range data.Friends {
		from, err := users.get(ff.From)
		if err != nil {
			return err
		}
		to, err := users.get(ff.To)
		if err != nil {
			return err
		}
		req, err := store.Friends.Request(from, to)
		if err != nil {
			return fmt.Errorf("friend request %s -> %s: %w", ff.From, ff.To, err)
		}
		if ff.Accepted {
			if _, err = store.Friends.Accept(req.Id); err != nil {
				return err
			}
		}
	}

	log.Println("Generating groups...")
	groups := make(map[string]int64, len(data.Groups))
	for _, gg := range data.Groups {
		admin, err := users.get(gg.Admin)
		if err != nil {
			return err
		}
		grp, err := store.Groups.Create(gg.Name, gg.Image, admin)
		if err != nil {
			return fmt.Errorf("group '%s': %w", gg.Name, err)
		}
		groups[gg.Name] = grp.Id

		for _, name := range gg.Members {
			uid, err := users.get(name)
			if err != nil {
				return err
			}
			req, err := store.Groups.Request(grp.Id, uid)
			if err != nil {
				return err
			}
			if _, err = store.Groups.AcceptRequest(req.Id); err != nil {
				return err
			}
		}
		for _, name := range gg.Pending {
			uid, err := users.get(name)
			if err != nil {
				return err
			}
			if _, err = store.Groups.Request(grp.Id, uid); err != nil {
				return err
			}
		}
	}

	log.Println("Generating messages...")
	for _, mm := range data.Messages {
		from, err := users.get(mm.From)
		if err != nil {
			return err
		}
		if mm.Group != "" {
			gid, ok := groups[mm.Group]
			if !ok {
				return fmt.Errorf("unknown group '%s'", mm.Group)
			}
			_, err = store.Messages.SaveGroup(gid, from, mm.Text)
		} else {
			var to types.Uid
			if to, err = users.get(mm.To); err != nil {
				return err
			}
			_, err = store.Messages.SaveDirect(from, to, mm.Text)
		}
		if err != nil {
			return err
		}
	}

	log.Println("All done.")
	return nil
}
