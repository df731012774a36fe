// Tool for creating the chat database and loading sample data.
//
//	chat-db -config ./chat.conf -data ./data.json
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/chatwire/chat/server/db/mysql"
	_ "github.com/chatwire/chat/server/db/postgres"
	"github.com/chatwire/chat/server/store"
	jcr "github.com/tinode/jsonco"
)

type configType struct {
	StoreConfig json.RawMessage `json:"store_config"`
}

func loadConfig(path string) (*configType, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config configType
	jr := jcr.New(file)
	if err = json.NewDecoder(jr).Decode(&config); err != nil {
		switch jerr := err.(type) {
		case *json.UnmarshalTypeError:
			lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
			log.Printf("Unmarshall error in config file in %s at %d:%d (offset %d bytes)",
				jerr.Field, lnum, cnum, jerr.Offset)
		case *json.SyntaxError:
			lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
			log.Printf("Syntax error in config file at %d:%d (offset %d bytes)",
				lnum, cnum, jerr.Offset)
		}
		return nil, err
	}
	return &config, nil
}

func main() {
	var reset = flag.Bool("reset", false, "force database reset")
	var noInit = flag.Bool("no_init", false, "check that database exists but don't create if missing")
	var datafile = flag.String("data", "", "name of file with sample data to load")
	var conffile = flag.String("config", "./chat.conf", "config of the database connection")

	flag.Parse()

	var data Data
	if *datafile != "" && *datafile != "-" {
		raw, err := os.ReadFile(*datafile)
		if err != nil {
			log.Fatalln("Failed to read sample data file:", err)
		}
		if err = json.Unmarshal(raw, &data); err != nil {
			log.Fatalln("Failed to parse sample data:", err)
		}
	}

	config, err := loadConfig(*conffile)
	if err != nil {
		log.Fatalln("Failed to parse config file:", err)
	}

	err = store.Store.Open(1, config.StoreConfig)
	defer store.Store.Close()

	log.Println("Database adapter", store.Store.GetAdapterName())

	if err != nil {
		if strings.Contains(err.Error(), "Database not initialized") {
			if *noInit {
				log.Fatalln("Database not found.")
			}
			log.Println("Database not found. Creating.")
		} else if strings.Contains(err.Error(), "Invalid database version") {
			if !*reset {
				log.Fatalln(err, "Use --reset to reset.")
			}
			log.Println(err, "Dropping and recreating the database.")
		} else {
			log.Fatalln("Failed to init DB adapter:", err)
		}
	} else if *reset {
		log.Println("Database reset requested")
	} else {
		log.Println("Database exists, DB version is correct. All done.")
		os.Exit(0)
	}

	if err = store.Store.InitDb(config.StoreConfig, true); err != nil {
		log.Fatalln("Failed to init DB:", err)
	}
	if *reset {
		log.Println("Database reset")
	} else {
		log.Println("Database initialized")
	}

	if err = genDb(&data); err != nil {
		log.Fatalln("Failed to load sample data:", err)
	}
	os.Exit(0)
}
