package fallback

import "github.com/ashureev/guidepost/internal/domain"

// curatedEntry pairs a lookup key with a hand-authored guide.
type curatedEntry struct {
	key   string
	guide domain.LearningGuide
}

// curated is matched by case-insensitive substring containment against the
// normalized topic. Slice order is the tie-break when several keys match,
// so the order here is part of the contract.
var curated = []curatedEntry{
	{
		key: "python",
		guide: domain.LearningGuide{
			Title:    "Python Programming",
			Stream:   "programming",
			Category: "languages",
			Explanation: "## What is Python?\n\n" +
				"Python is a high-level, general-purpose programming language known for " +
				"readable syntax and a huge standard library. It is interpreted and " +
				"dynamically typed, which makes the feedback loop between writing code and " +
				"seeing results very short.\n\n" +
				"## Core concepts\n\n" +
				"- **Variables and types**: numbers, strings, lists, dicts, sets, and tuples " +
				"cover most day-to-day data.\n" +
				"- **Control flow**: `if`/`elif`/`else`, `for` over any iterable, and `while`.\n" +
				"- **Functions**: first-class values with default arguments and keyword calls.\n" +
				"- **Modules and packages**: code is organized into importable files; `pip` " +
				"installs third-party packages from PyPI.\n\n" +
				"## Why it matters\n\n" +
				"Python dominates scripting, data analysis, machine learning, and backend " +
				"automation. The same language carries you from a ten-line script to a " +
				"production web service.\n\n" +
				"## How to practice\n\n" +
				"Work inside the interactive interpreter (`python3`) for quick experiments, " +
				"then move codes into files once an idea sticks. Reading tracebacks carefully " +
				"is half the skill.",
			Tasks: []domain.Task{
				{
					Title:       "FizzBuzz from scratch",
					Description: "Write a program that prints the numbers 1 to 100, replacing multiples of 3 with Fizz, multiples of 5 with Buzz, and multiples of both with FizzBuzz.",
					Difficulty:  domain.DifficultyBeginner,
					Hint:        "The modulo operator % tells you whether one number divides another.",
				},
				{
					Title:       "Word frequency counter",
					Description: "Read a text file and print the ten most common words with their counts, ignoring case and punctuation.",
					Difficulty:  domain.DifficultyIntermediate,
					Hint:        "collections.Counter and str.split do most of the heavy lifting.",
				},
				{
					Title:       "Build a tiny HTTP API",
					Description: "Expose the word counter as a web endpoint that accepts raw text in a POST body and returns the counts as JSON.",
					Difficulty:  domain.DifficultyAdvanced,
					Hint:        "The standard library's http.server works, but a micro-framework keeps the handler to a few lines.",
				},
			},
			RelatedTopics: []string{"data structures", "flask", "pandas"},
		},
	},
	{
		key: "database",
		guide: domain.LearningGuide{
			Title:    "Database Fundamentals",
			Stream:   "data",
			Category: "storage",
			Explanation: "## What is a database?\n\n" +
				"A database is an organized, durable store of structured data with an engine " +
				"that answers questions about it. Relational databases model data as tables " +
				"of rows and columns and are queried with SQL.\n\n" +
				"## Core concepts\n\n" +
				"- **Tables, rows, columns**: the relational building blocks.\n" +
				"- **Primary and foreign keys**: identity for rows and links between tables.\n" +
				"- **Queries**: `SELECT` with filtering, joining, grouping, and ordering.\n" +
				"- **Transactions**: groups of statements that succeed or fail as a unit " +
				"(the ACID guarantees).\n" +
				"- **Indexes**: sorted auxiliary structures that trade write cost for fast " +
				"lookups.\n\n" +
				"## Why it matters\n\n" +
				"Nearly every application keeps its source of truth in a database. Knowing " +
				"how to model data and read a query plan separates software that works in a " +
				"demo from software that works under load.\n\n" +
				"## How to practice\n\n" +
				"SQLite needs no server and ships everywhere; design a small schema, load " +
				"realistic data, and make queries fast by reading `EXPLAIN` output.",
			Tasks: []domain.Task{
				{
					Title:       "Design a library schema",
					Description: "Create tables for books, members, and loans in SQLite, with sensible keys and types, and seed them with a handful of rows.",
					Difficulty:  domain.DifficultyBeginner,
					Hint:        "A loan is a row that references both a book and a member.",
				},
				{
					Title:       "Answer questions with joins",
					Description: "Write queries for: which books are on loan right now, which member has borrowed the most, and which books have never been borrowed.",
					Difficulty:  domain.DifficultyIntermediate,
					Hint:        "LEFT JOIN plus a NULL check finds rows with no match on the other side.",
				},
				{
					Title:       "Make a slow query fast",
					Description: "Load 100k synthetic loans, find the slowest of your queries with EXPLAIN QUERY PLAN, and add the single index that fixes it.",
					Difficulty:  domain.DifficultyAdvanced,
					Hint:        "Index the columns that appear in WHERE and JOIN conditions, not the ones in SELECT.",
				},
			},
			RelatedTopics: []string{"sql", "data modeling", "transactions"},
		},
	},
	{
		key: "photosynthesis",
		guide: domain.LearningGuide{
			Title:    "Photosynthesis",
			Stream:   "science",
			Category: "biology",
			Explanation: "## What is photosynthesis?\n\n" +
				"Photosynthesis is the process by which plants, algae, and some bacteria " +
				"convert light energy, water, and carbon dioxide into glucose and oxygen. " +
				"It is the entry point for almost all energy in Earth's food webs.\n\n" +
				"## Core concepts\n\n" +
				"- **Chloroplasts and chlorophyll**: the organelle and pigment that capture " +
				"light, absorbing red and blue wavelengths and reflecting green.\n" +
				"- **Light-dependent reactions**: in the thylakoid membranes, light splits " +
				"water, releasing oxygen and charging the carriers ATP and NADPH.\n" +
				"- **The Calvin cycle**: in the stroma, ATP and NADPH power the fixation of " +
				"CO2 into sugar; no light is directly required.\n" +
				"- **Limiting factors**: light intensity, CO2 concentration, and temperature " +
				"each cap the overall rate.\n\n" +
				"## Why it matters\n\n" +
				"The oxygen in every breath and the energy in every meal trace back to this " +
				"reaction. It also anchors the global carbon cycle, which makes it central " +
				"to climate science.\n\n" +
				"## How to practice\n\n" +
				"Trace each atom: where does the oxygen released come from, and where does " +
				"the carbon in glucose come from? Being able to answer both is the test of " +
				"real understanding.",
			Tasks: []domain.Task{
				{
					Title:       "Write the overall equation",
					Description: "Write the balanced chemical equation for photosynthesis and label which inputs are used in which stage.",
					Difficulty:  domain.DifficultyBeginner,
					Hint:        "Six of almost everything: 6CO2 and 6H2O on one side.",
				},
				{
					Title:       "Diagram the two stages",
					Description: "Draw a chloroplast and annotate where the light-dependent reactions and the Calvin cycle happen, including what each stage consumes and produces.",
					Difficulty:  domain.DifficultyIntermediate,
					Hint:        "Thylakoid membranes for light reactions, stroma for the Calvin cycle.",
				},
				{
					Title:       "Design a limiting-factor experiment",
					Description: "Design an experiment using an aquatic plant to measure how light intensity affects the rate of photosynthesis, controlling for the other limiting factors.",
					Difficulty:  domain.DifficultyAdvanced,
					Hint:        "Counting oxygen bubbles per minute is a workable proxy for rate.",
				},
			},
			RelatedTopics: []string{"cellular respiration", "carbon cycle", "plant biology"},
		},
	},
	{
		key: "arduino",
		guide: domain.LearningGuide{
			Title:    "Arduino and Embedded Electronics",
			Stream:   "engineering",
			Category: "electronics",
			Explanation: "## What is Arduino?\n\n" +
				"Arduino is an open-source microcontroller platform: a small board with " +
				"digital and analog pins plus a friendly C++ toolchain. It turns code into " +
				"physical behavior, such as lights, motors, and sensor readings.\n\n" +
				"## Core concepts\n\n" +
				"- **The sketch lifecycle**: `setup()` runs once, `loop()` runs forever.\n" +
				"- **Digital I/O**: pins read or write HIGH/LOW; `pinMode` declares direction.\n" +
				"- **Analog input and PWM**: `analogRead` samples voltages, `analogWrite` " +
				"fakes analog output by switching quickly.\n" +
				"- **Basic circuits**: every LED needs a current-limiting resistor; every " +
				"button needs a defined idle state (pull-up or pull-down).\n" +
				"- **Serial communication**: `Serial.print` is your debugger.\n\n" +
				"## Why it matters\n\n" +
				"Embedded systems outnumber PCs enormously, and Arduino is the gentlest " +
				"on-ramp to the whole field: reading datasheets, respecting electrical " +
				"limits, and debugging systems you cannot single-step.\n\n" +
				"## How to practice\n\n" +
				"Build one small circuit at a time and change a single variable between " +
				"experiments. When something fails, check wiring before code.",
			Tasks: []domain.Task{
				{
					Title:       "Blink without delay",
					Description: "Make the onboard LED blink once per second without using the delay() function, so the loop stays responsive.",
					Difficulty:  domain.DifficultyBeginner,
					Hint:        "Compare millis() against the time you last toggled the pin.",
				},
				{
					Title:       "Read a sensor, drive an output",
					Description: "Wire a potentiometer or light sensor to an analog pin and use its value to control the brightness of an LED.",
					Difficulty:  domain.DifficultyIntermediate,
					Hint:        "map() rescales the 0-1023 input range to the 0-255 PWM range.",
				},
				{
					Title:       "Build a debounced counter",
					Description: "Wire a push button and count presses reliably, displaying the count over serial. Mechanical switches bounce, so naive counting will overcount.",
					Difficulty:  domain.DifficultyAdvanced,
					Hint:        "Ignore state changes that happen within a few tens of milliseconds of the previous one.",
				},
			},
			RelatedTopics: []string{"circuits", "c programming", "sensors"},
		},
	},
}
