// Package seed holds the initial course catalog and loads it into an empty database
package seed

import "github.com/learnanyskills/backend/internal/models"

func lesson(number int, title, description, duration string, objectives ...string) models.Lesson {
	return models.Lesson{
		Title:              title,
		Description:        description,
		LessonNumber:       number,
		EstimatedDuration:  duration,
		LearningObjectives: objectives,
		Status:             models.StatusActive,
	}
}

// Catalog returns the three initial courses with their lessons in lesson order
func Catalog() []models.SeedCourse {
	return []models.SeedCourse{
		{
			Course: models.Course{
				Title:       "Python for Data Analysis",
				Description: "Learn to analyze data using Python's powerful libraries including Pandas, NumPy, and Matplotlib.",
				Overview: `Master the fundamentals of data analysis with Python. This comprehensive course will take you from basic Python concepts to advanced data manipulation and visualization techniques.

You'll learn to:
- Work with different data formats (CSV, JSON, Excel)
- Clean and preprocess messy datasets
- Perform statistical analysis and create insightful visualizations
- Build data pipelines for real-world scenarios
- Use industry-standard libraries like Pandas, NumPy, Matplotlib, and Seaborn

Perfect for beginners looking to break into data science or professionals wanting to enhance their analytical skills.`,
				DifficultyLevel:   "Beginner to Intermediate",
				EstimatedDuration: "6-8 weeks",
				ImageURL:          "/images/python-data-analysis.jpg",
				Status:            models.StatusActive,
			},
			Lessons: []models.Lesson{
				lesson(1, "Introduction to Python and Data Types", "Learn Python basics and fundamental data types for data analysis", "45 minutes",
					"Understand Python syntax and data types",
					"Work with lists, dictionaries, and tuples",
					"Handle strings and numeric data",
					"Set up Python environment for data analysis",
				),
				lesson(2, "Introduction to NumPy", "Master NumPy arrays and mathematical operations", "60 minutes",
					"Create and manipulate NumPy arrays",
					"Perform mathematical operations on arrays",
					"Understand array indexing and slicing",
					"Work with multi-dimensional arrays",
				),
				lesson(3, "Getting Started with Pandas", "Learn DataFrame operations and data manipulation", "90 minutes",
					"Create and work with DataFrames",
					"Load data from various file formats",
					"Perform basic data exploration",
					"Handle missing data",
				),
				lesson(4, "Data Cleaning and Preprocessing", "Clean messy data and prepare it for analysis", "75 minutes",
					"Identify and handle missing values",
					"Remove duplicates and outliers",
					"Transform and normalize data",
					"Merge and join datasets",
				),
				lesson(5, "Data Visualization with Matplotlib", "Create compelling visualizations to communicate insights", "60 minutes",
					"Create basic plots (line, bar, scatter)",
					"Customize plot appearance",
					"Create subplots and complex layouts",
					"Export and save visualizations",
				),
			},
		},
		{
			Course: models.Course{
				Title:       "SQL Fundamentals",
				Description: "Master database queries, joins, and advanced SQL techniques for data retrieval and analysis.",
				Overview: `Become proficient in SQL, the universal language of databases. This course covers everything from basic queries to complex database operations.

You'll learn to:
- Write efficient SELECT, INSERT, UPDATE, and DELETE statements
- Master different types of JOINs and subqueries
- Create and manage database schemas
- Optimize query performance
- Work with aggregate functions and window functions
- Handle complex data relationships

Essential for anyone working with databases, data analysis, or backend development.`,
				DifficultyLevel:   "Beginner to Advanced",
				EstimatedDuration: "4-6 weeks",
				ImageURL:          "/images/sql-fundamentals.jpg",
				Status:            models.StatusActive,
			},
			Lessons: []models.Lesson{
				lesson(1, "Database Fundamentals and SELECT Statements", "Understanding databases and basic query structure", "50 minutes",
					"Understand relational database concepts",
					"Write basic SELECT statements",
					"Use WHERE clauses for filtering",
					"Sort results with ORDER BY",
				),
				lesson(2, "Working with Multiple Tables - JOINs", "Learn different types of joins to combine data", "70 minutes",
					"Understand table relationships",
					"Master INNER, LEFT, RIGHT, and FULL JOINs",
					"Use table aliases effectively",
					"Handle complex multi-table queries",
				),
				lesson(3, "Aggregate Functions and Grouping", "Summarize data using aggregate functions", "60 minutes",
					"Use COUNT, SUM, AVG, MIN, MAX functions",
					"Group data with GROUP BY",
					"Filter groups with HAVING",
					"Create summary reports",
				),
				lesson(4, "Subqueries and Advanced Techniques", "Write complex queries with subqueries and CTEs", "80 minutes",
					"Write correlated and non-correlated subqueries",
					"Use Common Table Expressions (CTEs)",
					"Understand window functions",
					"Optimize query performance",
				),
			},
		},
		{
			Course: models.Course{
				Title:       "Excel Mastery",
				Description: "Advanced Excel techniques including formulas, pivot tables, macros, and data analysis tools.",
				Overview: `Transform your Excel skills from basic to expert level. Learn advanced techniques used by financial analysts, data professionals, and business experts.

You'll learn to:
- Master complex formulas and functions (VLOOKUP, INDEX-MATCH, etc.)
- Create dynamic pivot tables and charts
- Automate tasks with macros and VBA
- Use Excel's built-in data analysis tools
- Design professional dashboards and reports
- Handle large datasets efficiently

Perfect for business professionals, analysts, and anyone who works with data in Excel.`,
				DifficultyLevel:   "Intermediate to Advanced",
				EstimatedDuration: "5-7 weeks",
				ImageURL:          "/images/excel-mastery.jpg",
				Status:            models.StatusActive,
			},
			Lessons: []models.Lesson{
				lesson(1, "Advanced Formulas and Functions", "Master complex Excel formulas for data analysis", "65 minutes",
					"Use VLOOKUP, HLOOKUP, and INDEX-MATCH",
					"Master conditional functions (IF, COUNTIF, SUMIF)",
					"Work with text functions",
					"Handle date and time calculations",
				),
				lesson(2, "Dynamic Pivot Tables and Charts", "Create interactive reports with pivot tables", "75 minutes",
					"Build comprehensive pivot tables",
					"Create calculated fields and items",
					"Design pivot charts",
					"Use slicers and timelines for interactivity",
				),
				lesson(3, "Data Analysis Tools and Add-ins", "Leverage Excel's built-in analysis features", "55 minutes",
					"Use Data Analysis ToolPak",
					"Perform statistical analysis",
					"Create data models with Power Query",
					"Build forecasting models",
				),
				lesson(4, "Automation with Macros and VBA", "Automate repetitive tasks with Visual Basic", "90 minutes",
					"Record and edit macros",
					"Write basic VBA code",
					"Create user forms and controls",
					"Automate data processing workflows",
				),
			},
		},
	}
}
